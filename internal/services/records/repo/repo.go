// Package repo persists records as opaque JSON documents
package repo

import (
	"context"

	"piptrade/internal/platform/store"
)

// Table is where both backends keep records
const Table = "records"

// Doc is one stored document, Body is the record JSON without its id
type Doc struct {
	ID   string
	Body string
}

// Repo is the minimal persistence surface for records
type Repo interface {
	// EnsureSchema creates the records table when missing
	EnsureSchema(ctx context.Context) error
	// Insert writes docs all or nothing
	Insert(ctx context.Context, docs []Doc) error
	// All returns every doc in insertion order
	All(ctx context.Context) ([]Doc, error)
	Count(ctx context.Context) (int64, error)
}

func scanDoc(row store.Row) (Doc, error) {
	var d Doc
	err := row.Scan(&d.ID, &d.Body)
	return d, err
}
