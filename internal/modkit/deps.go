// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"piptrade/internal/platform/config"
	"piptrade/internal/platform/logger"
	"piptrade/internal/platform/store"
)

// DefaultFetchBudget bounds a full record set read
const DefaultFetchBudget = 30 * time.Second

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Backend names the store the record modules read and write
	Backend store.Backend
	PG      store.TxRunner
	CH      store.Clickhouse

	// FetchBudget caps reads of the whole record set, zero means DefaultFetchBudget
	FetchBudget time.Duration
}

// Budget returns the effective fetch budget
func (d Deps) Budget() time.Duration {
	if d.FetchBudget <= 0 {
		return DefaultFetchBudget
	}
	return d.FetchBudget
}

// Selected returns the backend to use, falling back to whichever handle is set
// pg wins when nothing is named and both are present
func (d Deps) Selected() store.Backend {
	switch {
	case d.Backend != "":
		return d.Backend
	case d.PG == nil && d.CH != nil:
		return store.BackendClickhouse
	default:
		return store.BackendPG
	}
}
