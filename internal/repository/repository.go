// Package repository defines the storage contracts shared by the memory,
// MySQL and Redis implementations.
package repository

import (
	"context"
	"errors"
	"time"

	"NGO_Platform/internal/model"
)

var ErrNoRecord = errors.New("record not found")

// IndexedFields is the lookup field each kind keeps a secondary index for.
var IndexedFields = map[model.Kind]string{
	model.KindUser:     "email",
	model.KindDonation: "transactionId",
}

// Backend stores records by kind. Implementations copy records on the way in
// and out; callers may mutate what they get back.
type Backend interface {
	// NextID returns the next per-kind counter value as a decimal string.
	NextID(ctx context.Context, kind model.Kind) (string, error)
	Insert(ctx context.Context, kind model.Kind, rec model.Record) error
	Get(ctx context.Context, kind model.Kind, id string) (model.Record, error)
	// FindBy returns the first record, in insertion order, whose field equals value.
	FindBy(ctx context.Context, kind model.Kind, field, value string) (model.Record, error)
	// List returns every record of kind in insertion order.
	List(ctx context.Context, kind model.Kind) ([]model.Record, error)
	// Replace overwrites the record and refreshes its index entry in one step.
	Replace(ctx context.Context, kind model.Kind, id string, rec model.Record) error
	Delete(ctx context.Context, kind model.Kind, id string) error
}

// TokenBlocklist remembers revoked token ids until they would have expired anyway.
type TokenBlocklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
