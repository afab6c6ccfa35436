package store

import (
	"context"

	"NGO_Platform/internal/model"
)

// AddCampaign defaults status to active and raised to 0.
func (s *Store) AddCampaign(ctx context.Context, data model.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.add(ctx, model.KindCampaign, data, func(rec model.Record) {
		if rec.String("status") == "" {
			rec["status"] = model.CampaignActive
		}
		if !rec.Bool("raised") {
			rec["raised"] = 0.0
		}
	})
	if err != nil {
		return "", err
	}
	return rec.ID(), nil
}

func (s *Store) GetCampaigns(ctx context.Context, f model.Filter) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(ctx, model.KindCampaign, f)
}

func (s *Store) GetCampaignByID(ctx context.Context, id string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(ctx, model.KindCampaign, id)
}

func (s *Store) UpdateCampaign(ctx context.Context, id string, updates model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.update(ctx, model.KindCampaign, id, updates, nil)
	return err
}
