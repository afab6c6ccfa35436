package store

import (
	"context"

	"NGO_Platform/internal/model"
)

func (s *Store) AddVolunteer(ctx context.Context, data model.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.add(ctx, model.KindVolunteer, data, func(rec model.Record) {
		rec["joinedAt"] = rec["createdAt"]
		if rec.String("status") == "" {
			rec["status"] = model.VolunteerActive
		}
	})
	if err != nil {
		return "", err
	}
	return rec.ID(), nil
}

func (s *Store) GetVolunteers(ctx context.Context, f model.Filter) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(ctx, model.KindVolunteer, f)
}
