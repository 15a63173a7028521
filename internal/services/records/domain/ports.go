// Package domain holds the record store contract and the /alldata wire shapes
package domain

import (
	"context"

	"piptrade/internal/core/record"
)

// RecordsPort is consumed by handlers and other modules
type RecordsPort interface {
	// InsertMany stores every record or none and returns them with their new ids
	InsertMany(ctx context.Context, recs []record.Record) ([]record.Record, error)
	// FetchAll returns the whole collection in insertion order
	FetchAll(ctx context.Context) ([]record.Record, error)
	// Count reports how many records are stored
	Count(ctx context.Context) (int64, error)
}
