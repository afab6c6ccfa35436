package store

import (
	"context"

	"NGO_Platform/internal/model"
)

// AddVolunteerApplication always starts the application in pending.
func (s *Store) AddVolunteerApplication(ctx context.Context, data model.Record) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(ctx, model.KindVolunteerApplication, data, func(rec model.Record) {
		rec["appliedAt"] = rec["createdAt"]
		rec["status"] = model.ApplicationPending
	})
}

func (s *Store) GetVolunteerApplications(ctx context.Context, f model.Filter) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(ctx, model.KindVolunteerApplication, f)
}

// UpdateVolunteerApplication merges updates, enforcing pending -> approved|rejected.
// Re-applying the current status succeeds.
func (s *Store) UpdateVolunteerApplication(ctx context.Context, id string, updates model.Record) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(ctx, model.KindVolunteerApplication, id, updates, func(old, merged model.Record) error {
		if !updates.Has("status") {
			return nil
		}
		next, ok := updates["status"].(string)
		if !ok || !model.ValidApplicationStatus(next) {
			return ErrInvalidStatus
		}
		if !model.CanTransition(old.String("status"), next) {
			return ErrInvalidTransition
		}
		return nil
	})
}
