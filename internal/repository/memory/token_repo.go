package memory

import (
	"context"
	"sync"
	"time"

	"NGO_Platform/internal/repository"
)

// TokenRepository is the in-process revocation list used when Redis is not configured.
type TokenRepository struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

var _ repository.TokenBlocklist = (*TokenRepository)(nil)

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{revoked: make(map[string]time.Time), now: time.Now}
}

// WithClock replaces the time source, for tests.
func (r *TokenRepository) WithClock(now func() time.Time) *TokenRepository {
	r.now = now
	return r
}

func (r *TokenRepository) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	r.revoked[jti] = r.now().Add(ttl)
	return nil
}

func (r *TokenRepository) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.revoked[jti]
	if !ok {
		return false, nil
	}
	if !r.now().Before(exp) {
		delete(r.revoked, jti)
		return false, nil
	}
	return true, nil
}

// sweep drops entries whose tokens have expired on their own.
func (r *TokenRepository) sweep() {
	now := r.now()
	for jti, exp := range r.revoked {
		if !now.Before(exp) {
			delete(r.revoked, jti)
		}
	}
}
