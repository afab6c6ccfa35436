// Package store implements per-kind record operations over a repository.Backend.
//
// Every operation runs under a single mutex, so composite steps such as
// "check the email is free, then insert the user" are atomic and a user is
// never observed with its email index half-updated.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"NGO_Platform/internal/model"
	"NGO_Platform/internal/pkg"
	"NGO_Platform/internal/repository"
)

type Store struct {
	mu       sync.RWMutex
	backend  repository.Backend
	now      func() time.Time
	newTxnID func() string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTransactionIDs overrides how missing donation transaction ids are generated.
func WithTransactionIDs(gen func() string) Option {
	return func(s *Store) { s.newTxnID = gen }
}

func New(backend repository.Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		now:      time.Now,
		newTxnID: pkg.NewTransactionID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() string {
	return model.Timestamp(s.now())
}

// add assigns id and createdAt, lets prepare fill kind defaults, then inserts.
// Caller holds s.mu.
func (s *Store) add(ctx context.Context, kind model.Kind, data model.Record, prepare func(model.Record)) (model.Record, error) {
	id, err := s.backend.NextID(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", kind, err)
	}
	rec := data.Clone()
	if rec == nil {
		rec = model.Record{}
	}
	rec["id"] = id
	rec["createdAt"] = s.timestamp()
	if prepare != nil {
		prepare(rec)
	}
	if err := s.backend.Insert(ctx, kind, rec); err != nil {
		return nil, fmt.Errorf("add %s: %w", kind, err)
	}
	return rec, nil
}

// Caller holds s.mu (read or write).
func (s *Store) get(ctx context.Context, kind model.Kind, id string) (model.Record, error) {
	rec, err := s.backend.Get(ctx, kind, id)
	if err != nil {
		return nil, translate(kind, err)
	}
	return rec, nil
}

// Caller holds s.mu (read or write).
func (s *Store) list(ctx context.Context, kind model.Kind, f model.Filter) ([]model.Record, error) {
	all, err := s.backend.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	out := make([]model.Record, 0, len(all))
	for _, rec := range all {
		if rec.Matches(f) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// update shallow-merges updates over the stored record and stamps updatedAt.
// check may reject the change or adjust the merged record. Caller holds s.mu.
func (s *Store) update(ctx context.Context, kind model.Kind, id string, updates model.Record, check func(old, merged model.Record) error) (model.Record, error) {
	old, err := s.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	merged := old.Merge(updates)
	merged["updatedAt"] = s.timestamp()
	if check != nil {
		if err := check(old, merged); err != nil {
			return nil, err
		}
	}
	if err := s.backend.Replace(ctx, kind, id, merged); err != nil {
		return nil, translate(kind, err)
	}
	return merged, nil
}

func translate(kind model.Kind, err error) error {
	if errors.Is(err, repository.ErrNoRecord) {
		return &NotFoundError{Kind: kind}
	}
	return fmt.Errorf("%s: %w", kind, err)
}
