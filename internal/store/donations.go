package store

import (
	"context"

	"NGO_Platform/internal/model"
)

// AddDonation keeps a client-supplied transactionId or generates one. The
// referenced campaign is not checked.
func (s *Store) AddDonation(ctx context.Context, data model.Record) (id, transactionID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.add(ctx, model.KindDonation, data, func(rec model.Record) {
		if rec.String("transactionId") == "" {
			rec["transactionId"] = s.newTxnID()
		}
		if rec.String("status") == "" {
			rec["status"] = model.DonationCompleted
		}
		if rec.String("paymentStatus") == "" {
			rec["paymentStatus"] = model.PaymentVerified
		}
	})
	if err != nil {
		return "", "", err
	}
	return rec.ID(), rec.String("transactionId"), nil
}

func (s *Store) GetDonations(ctx context.Context, f model.Filter) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(ctx, model.KindDonation, f)
}

func (s *Store) GetDonationByTransactionID(ctx context.Context, transactionID string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if transactionID == "" {
		return nil, &NotFoundError{Kind: model.KindDonation}
	}
	rec, err := s.backend.FindBy(ctx, model.KindDonation, "transactionId", transactionID)
	if err != nil {
		return nil, translate(model.KindDonation, err)
	}
	return rec, nil
}
