// Package service contains the record store workflows behind /alldata
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"piptrade/internal/core/record"
	perr "piptrade/internal/platform/errors"
	"piptrade/internal/platform/logger"
	"piptrade/internal/platform/metrics"
	"piptrade/internal/platform/store"
	"piptrade/internal/services/records/domain"
	"piptrade/internal/services/records/repo"
)

// Service defines the records service contract
type Service interface {
	domain.RecordsPort
}

// Svc implements the records service over one backend
type Svc struct {
	Repo    repo.Repo
	backend store.Backend
	budget  time.Duration
	newID   func() uuid.UUID
}

// New constructs a records service, budget bounds FetchAll
func New(r repo.Repo, backend store.Backend, budget time.Duration) *Svc {
	if r == nil {
		panic("records.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, backend: backend, budget: budget, newID: uuid.New}
}

// InsertMany stores recs in one shot and returns them carrying their ids
func (s *Svc) InsertMany(ctx context.Context, recs []record.Record) ([]record.Record, error) {
	docs := make([]repo.Doc, 0, len(recs))
	out := make([]record.Record, 0, len(recs))
	for i, r := range recs {
		body, err := json.Marshal(r.WithID(""))
		if err != nil {
			return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeJSON, "encode record"), itemField(i))
		}
		id := s.newID().String()
		docs = append(docs, repo.Doc{ID: id, Body: string(body)})
		out = append(out, r.WithID(id))
	}

	err := s.try(ctx, "insert", func(ctx context.Context) error { return s.Repo.Insert(ctx, docs) })
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("backend", string(s.backend)).Int("records", len(docs)).Msg("bulk insert failed")
		return nil, s.classify(err, "insert records")
	}
	metrics.RecordInserted(string(s.backend), len(docs))
	return out, nil
}

// FetchAll returns every stored record within the fetch budget
func (s *Svc) FetchAll(ctx context.Context) ([]record.Record, error) {
	if s.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.budget)
		defer cancel()
	}

	var docs []repo.Doc
	err := s.try(ctx, "fetch_all", func(ctx context.Context) (err error) {
		docs, err = s.Repo.All(ctx)
		return err
	})
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("backend", string(s.backend)).Msg("fetch all failed")
		return nil, s.classify(err, "fetch records")
	}

	out := make([]record.Record, 0, len(docs))
	for _, d := range docs {
		var r record.Record
		if err := json.Unmarshal([]byte(d.Body), &r); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDB, "decode record %s", d.ID)
		}
		out = append(out, r.WithID(d.ID))
	}
	return out, nil
}

// Count reports the number of stored records
func (s *Svc) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.try(ctx, "count", func(ctx context.Context) (err error) {
		n, err = s.Repo.Count(ctx)
		return err
	})
	if err != nil {
		return 0, s.classify(err, "count records")
	}
	return n, nil
}

// maxAttempts bounds store calls that fail with a transient error
const maxAttempts = 3

// try runs one store op, again while it fails transiently
// Inserts are all or nothing so a retried insert never duplicates
func (s *Svc) try(ctx context.Context, op string, fn func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		start := time.Now()
		err = fn(ctx)
		metrics.RecordStoreOp(string(s.backend), op, time.Since(start), err)
		if err == nil || !perr.Retryable(err) || ctx.Err() != nil {
			return err
		}
		logger.C(ctx).Warn().Err(err).Str("op", op).Int("attempt", attempt).Msg("transient store error")
	}
	return err
}

func (s *Svc) classify(err error, msg string) error {
	if s.backend == store.BackendClickhouse {
		return perr.FromClickHouse(err, msg)
	}
	return perr.FromPostgres(err, msg)
}

func itemField(i int) string { return fmt.Sprintf("[%d]", i) }
