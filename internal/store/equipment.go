package store

import (
	"context"

	"NGO_Platform/internal/model"
)

// AddEquipment starts with nothing allocated, so remainingFunds equals totalCost.
func (s *Store) AddEquipment(ctx context.Context, data model.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.add(ctx, model.KindEquipment, data, func(rec model.Record) {
		if rec.String("status") == "" {
			rec["status"] = model.EquipmentPending
		}
		rec["allocatedFunds"] = 0.0
		rec["remainingFunds"] = rec["totalCost"]
	})
	if err != nil {
		return "", err
	}
	return rec.ID(), nil
}

func (s *Store) GetEquipment(ctx context.Context, f model.Filter) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(ctx, model.KindEquipment, f)
}

// UpdateEquipment recomputes remainingFunds when totalCost or allocatedFunds
// change and the caller did not set remainingFunds itself.
func (s *Store) UpdateEquipment(ctx context.Context, id string, updates model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.update(ctx, model.KindEquipment, id, updates, func(_, merged model.Record) error {
		if updates.Has("remainingFunds") {
			return nil
		}
		if !updates.Has("totalCost") && !updates.Has("allocatedFunds") {
			return nil
		}
		total, ok := merged.Float("totalCost")
		if !ok {
			return nil
		}
		allocated, _ := merged.Float("allocatedFunds")
		merged["remainingFunds"] = total - allocated
		return nil
	})
	return err
}

func (s *Store) DeleteEquipment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, model.KindEquipment, id); err != nil {
		return translate(model.KindEquipment, err)
	}
	return nil
}
