package store

import (
	"context"
	"errors"

	"NGO_Platform/internal/model"
	"NGO_Platform/internal/repository"
)

// AddUser stores a new user and indexes it by email. A taken email fails with ErrEmailTaken.
func (s *Store) AddUser(ctx context.Context, data model.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.emailFree(ctx, data.String("email"), ""); err != nil {
		return "", err
	}
	rec, err := s.add(ctx, model.KindUser, data, func(rec model.Record) {
		rec["verified"] = data.Bool("verified")
	})
	if err != nil {
		return "", err
	}
	return rec.ID(), nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(ctx, model.KindUser, id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if email == "" {
		return nil, &NotFoundError{Kind: model.KindUser}
	}
	rec, err := s.backend.FindBy(ctx, model.KindUser, "email", email)
	if err != nil {
		return nil, translate(model.KindUser, err)
	}
	return rec, nil
}

// UpdateUser merges updates into the user. Changing the email moves the
// index entry, so the old address stops resolving. An email update must be a
// non-empty string; anything else fails with ErrInvalidEmail.
func (s *Store) UpdateUser(ctx context.Context, id string, updates model.Record) error {
	if updates.Has("email") {
		if email, ok := updates["email"].(string); !ok || email == "" {
			return ErrInvalidEmail
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.update(ctx, model.KindUser, id, updates, func(old, merged model.Record) error {
		if email := merged.String("email"); email != old.String("email") {
			return s.emailFree(ctx, email, id)
		}
		return nil
	})
	return err
}

// emailFree fails when email belongs to a user other than self. Caller holds s.mu.
func (s *Store) emailFree(ctx context.Context, email, self string) error {
	if email == "" {
		return nil
	}
	existing, err := s.backend.FindBy(ctx, model.KindUser, "email", email)
	switch {
	case errors.Is(err, repository.ErrNoRecord):
		return nil
	case err != nil:
		return translate(model.KindUser, err)
	case existing.ID() == self:
		return nil
	}
	return ErrEmailTaken
}
