package store

import "time"

// Backend names the record store implementation a deployment runs on
type Backend string

const (
	BackendPG         Backend = "pg"
	BackendClickhouse Backend = "clickhouse"
)

// Backends lists the accepted SERVICE_STORE_BACKEND values, default first
func Backends() []string { return []string{string(BackendPG), string(BackendClickhouse)} }

// Config is everything Open needs; disabled backends are skipped
type Config struct {
	AppName string
	Connect ConnectPolicy

	PG PGConfig
	CH CHConfig
}

// ConnectPolicy bounds the boot-time ping loop, zero fields take defaults
type ConnectPolicy struct {
	Attempts    int
	PingTimeout time.Duration
}

func (p ConnectPolicy) withDefaults() ConnectPolicy {
	if p.Attempts <= 0 {
		p.Attempts = defaultConnectAttempts
	}
	if p.PingTimeout <= 0 {
		p.PingTimeout = defaultPingTimeout
	}
	return p
}

type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32

	LogSQL    bool
	SlowQuery time.Duration

	StatementTimeout time.Duration
}

type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string

	// sent as max_execution_time, 0 keeps the server's
	MaxExecution time.Duration
}
