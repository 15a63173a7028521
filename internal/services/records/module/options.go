package module

import (
	"time"

	"piptrade/internal/platform/config"
)

// Options controls the records module
type Options struct {
	// IngestRate is POST /alldata requests per IngestWindow per client ip, <= 0 disables it
	IngestRate   int
	IngestWindow time.Duration

	// EnsureSchema creates the backing table on startup
	EnsureSchema bool
}

// FromConfig reads CORE_API_ knobs from cfg, which is expected to carry that prefix
func FromConfig(cfg config.Conf) Options {
	return Options{
		IngestRate:   cfg.MayInt("INGEST_RATE", 30),
		IngestWindow: cfg.MayDuration("INGEST_WINDOW", time.Minute),
		EnsureSchema: cfg.MayBool("ENSURE_SCHEMA", true),
	}
}
