package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"piptrade/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo names this process in system.query_log; tag is the
// binary, e.g. "piptrade-api" or "piptrade-import"
func BuildClientInfo(name, tag string) clickhouse.ClientInfo {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "piptrade"
	}
	host, _ := os.Hostname()
	bi := version.Info()
	return clickhouse.ClientInfo{Products: []struct{ Name, Version string }{
		{Name: name, Version: strings.TrimSpace(tag)},
		{Name: "piptrade", Version: bi.Version},
		{Name: "go", Version: runtime.Version()},
		{Name: "commit", Version: commit(bi.Commit)},
		{Name: "host", Version: host},
	}}
}

// commit prefers the ldflags value, then the vcs stamp Go embeds
func commit(stamped string) string {
	if stamped != "" && stamped != "none" {
		return stamped
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}
