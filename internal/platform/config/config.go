// Package config reads application settings from prefixed environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"piptrade/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. "CORE_API_" or "SERVICE_PGSQL_"
type Conf struct{ prefix string }

// New returns the unprefixed view, used for keys such as PORT
func New() Conf { return Conf{} }

func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// LoadDotEnv merges files (default .env) into the environment; variables
// already set win and missing files are skipped
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	log := logger.Named("config")
	for _, f := range files {
		switch err := godotenv.Load(f); {
		case err == nil:
			log.Debug().Str("file", f).Msg("env file loaded")
		case errors.Is(err, os.ErrNotExist):
		default:
			log.Warn().Err(err).Str("file", f).Msg("env file unreadable")
		}
	}
}

func (c Conf) missing(k string, extra ...string) {
	logger.Get().Panic().Str("key", c.key(k)).Strs("fallbacks", extra).Msg("missing required env")
}

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		c.missing(key)
	}
	return v
}

// MustStringOr tries key, then each unprefixed fallback, then panics
func (c Conf) MustStringOr(key string, fallbacks ...string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	for _, f := range fallbacks {
		if v := New().lookup(f); v != "" {
			return v
		}
	}
	c.missing(key, fallbacks...)
	return ""
}

// may parses key with parse, def when unset; bad values warn and yield def
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg("bad env value, using default")
		return def
	}
	return v
}

func (c Conf) MayString(key, def string) string {
	return may(c, key, def, func(s string) (string, error) { return s, nil })
}

func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration accepts positive Go durations such as "30s"
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(s)
		if err == nil && d <= 0 {
			err = fmt.Errorf("duration must be positive")
		}
		return d, err
	})
}

// MayCSV splits on commas dropping blanks, def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for p := range strings.SplitSeq(c.lookup(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayPort returns ":<port>", def when unset; values outside 1..65535 panic
func (c Conf) MayPort(key string, def int) string {
	p := def
	if s := c.lookup(key); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 65535 {
			logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
		}
		p = n
	}
	return ":" + strconv.Itoa(p)
}

// MayEnum matches case-insensitively against allowed and returns it lower-cased;
// def when unset, panics on anything else
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	i := slices.IndexFunc(allowed, func(a string) bool { return strings.EqualFold(a, v) })
	if i < 0 {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	}
	return strings.ToLower(allowed[i])
}
