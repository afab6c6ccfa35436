package service

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// Hasher runs bcrypt with at most workers hashes in flight.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

func NewHasher(cost, workers int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Hasher{cost: cost, sem: semaphore.NewWeighted(int64(workers))}
}

func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. A malformed hash is a mismatch.
func (h *Hasher) Compare(ctx context.Context, hash, password string) (bool, error) {
	if hash == "" {
		return false, nil
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		// mismatch, or a malformed hash
		return false, nil
	}
	return true, nil
}
