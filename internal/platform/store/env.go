package store

import (
	"time"

	"piptrade/internal/platform/config"
)

// FromEnv reads the SERVICE_* views of root and enables only the selected
// backend; postgres falls back to the bare url variable
func FromEnv(root config.Conf, appName string, budget time.Duration) (Backend, Config) {
	sc := root.Prefix("SERVICE_STORE_")
	backend := Backend(sc.MayEnum("BACKEND", string(BackendPG), Backends()...))
	cfg := Config{
		AppName: appName,
		Connect: ConnectPolicy{
			Attempts:    sc.MayInt("CONNECT_ATTEMPTS", defaultConnectAttempts),
			PingTimeout: sc.MayDuration("PING_TIMEOUT", defaultPingTimeout),
		},
	}

	if backend == BackendClickhouse {
		cfg.CH = CHConfig{
			Enabled:      true,
			URL:          root.Prefix("SERVICE_CLICKHOUSE_").MustString("DBURL"),
			ClientName:   "piptrade",
			ClientTag:    appName,
			MaxExecution: budget,
		}
		return backend, cfg
	}

	pc := root.Prefix("SERVICE_PGSQL_")
	cfg.PG = PGConfig{
		Enabled:          true,
		URL:              pc.MustStringOr("DBURL", "url"),
		MaxConns:         int32(pc.MayInt("MAX_CONNS", 4)),
		LogSQL:           pc.MayBool("LOG_SQL", false),
		SlowQuery:        time.Duration(pc.MayInt("SLOW_MS", 500)) * time.Millisecond,
		StatementTimeout: budget,
	}
	return backend, cfg
}
