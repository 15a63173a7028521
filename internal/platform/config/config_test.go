package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "piptrade/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	svc := New().Prefix("SERVICE_")
	if got := svc.key("STORE_BACKEND"); got != "SERVICE_STORE_BACKEND" {
		t.Fatalf("key() = %q", got)
	}
	pg := svc.Prefix("PGSQL_")
	if got := pg.key("DBURL"); got != "SERVICE_PGSQL_DBURL" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  piptrade ")
	if got := c.MustString("NAME"); got != "piptrade" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustStringOrFallsBack(t *testing.T) {
	c := New().Prefix("SERVICE_PGSQL_")
	t.Setenv("SERVICE_PGSQL_DBURL", "")
	t.Setenv("url", "postgres://legacy")
	if got := c.MustStringOr("DBURL", "url"); got != "postgres://legacy" {
		t.Fatalf("fallback = %q", got)
	}

	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://primary")
	if got := c.MustStringOr("DBURL", "url"); got != "postgres://primary" {
		t.Fatalf("primary = %q", got)
	}

	t.Setenv("SERVICE_PGSQL_DBURL", "")
	t.Setenv("url", "")
	kit.MustPanic(t, func() { _ = c.MustStringOr("DBURL", "url") })
}

func TestMayReaders(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_S", " hi ")
	t.Setenv("M_I", "42")
	t.Setenv("M_IBAD", "x")
	t.Setenv("M_B", "true")
	t.Setenv("M_BBAD", "maybe")
	t.Setenv("M_D", "2s")
	t.Setenv("M_DNEG", "-1s")
	t.Setenv("M_CSV", " a, ,b ")
	t.Setenv("M_CSVEMPTY", " , ")

	if c.MayString("S", "d") != "hi" || c.MayString("NONE", "d") != "d" {
		t.Fatalf("MayString")
	}
	if c.MayInt("I", 1) != 42 || c.MayInt("IBAD", 1) != 1 || c.MayInt("NONE", 7) != 7 {
		t.Fatalf("MayInt")
	}
	if !c.MayBool("B", false) || c.MayBool("BBAD", false) || !c.MayBool("NONE", true) {
		t.Fatalf("MayBool")
	}
	if c.MayDuration("D", time.Second) != 2*time.Second || c.MayDuration("DNEG", time.Second) != time.Second {
		t.Fatalf("MayDuration")
	}
	if got := c.MayCSV("CSV", nil); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("CSVEMPTY", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV blanks = %v", got)
	}
}

func TestMayPort(t *testing.T) {
	c := New()
	t.Setenv("PORT", "")
	if got := c.MayPort("PORT", 6000); got != ":6000" {
		t.Fatalf("default port = %q", got)
	}
	t.Setenv("PORT", " 8080 ")
	if got := c.MayPort("PORT", 6000); got != ":8080" {
		t.Fatalf("port = %q", got)
	}
	t.Setenv("PORT", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("PORT", 6000) })
	t.Setenv("PORT", "http")
	kit.MustPanic(t, func() { _ = c.MayPort("PORT", 6000) })
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("SERVICE_")
	t.Setenv("SERVICE_STORE_BACKEND", "")
	if got := c.MayEnum("STORE_BACKEND", "pg", "pg", "clickhouse"); got != "pg" {
		t.Fatalf("default enum = %q", got)
	}
	t.Setenv("SERVICE_STORE_BACKEND", "ClickHouse")
	if got := c.MayEnum("STORE_BACKEND", "pg", "pg", "clickhouse"); got != "clickhouse" {
		t.Fatalf("enum = %q", got)
	}
	t.Setenv("SERVICE_STORE_BACKEND", "mongo")
	kit.MustPanic(t, func() { _ = c.MayEnum("STORE_BACKEND", "pg", "pg", "clickhouse") })
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, ".env")
	if err := os.WriteFile(f, []byte("DOTENV_A=from-file\nDOTENV_B=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOTENV_B", "from-env")
	t.Setenv("DOTENV_A", "")
	os.Unsetenv("DOTENV_A")

	LoadDotEnv(filepath.Join(dir, "missing.env"), f)
	t.Cleanup(func() { os.Unsetenv("DOTENV_A") })

	if got := os.Getenv("DOTENV_A"); got != "from-file" {
		t.Fatalf("DOTENV_A = %q", got)
	}
	if got := os.Getenv("DOTENV_B"); got != "from-env" {
		t.Fatalf("existing env must win, got %q", got)
	}
}
