package handler

import (
	"context"

	"NGO_Platform/internal/model"
)

// *store.Store satisfies every interface below.

type CampaignStore interface {
	AddCampaign(ctx context.Context, data model.Record) (string, error)
	GetCampaigns(ctx context.Context, f model.Filter) ([]model.Record, error)
	GetCampaignByID(ctx context.Context, id string) (model.Record, error)
	UpdateCampaign(ctx context.Context, id string, updates model.Record) error
}

type DonationStore interface {
	AddDonation(ctx context.Context, data model.Record) (id, transactionID string, err error)
	GetDonations(ctx context.Context, f model.Filter) ([]model.Record, error)
	GetDonationByTransactionID(ctx context.Context, transactionID string) (model.Record, error)
}

type VolunteerStore interface {
	AddVolunteer(ctx context.Context, data model.Record) (string, error)
	GetVolunteers(ctx context.Context, f model.Filter) ([]model.Record, error)
}

type EquipmentStore interface {
	AddEquipment(ctx context.Context, data model.Record) (string, error)
	GetEquipment(ctx context.Context, f model.Filter) ([]model.Record, error)
	UpdateEquipment(ctx context.Context, id string, updates model.Record) error
	DeleteEquipment(ctx context.Context, id string) error
}

type UserStore interface {
	GetUserByID(ctx context.Context, id string) (model.Record, error)
	UpdateUser(ctx context.Context, id string, updates model.Record) error
}

type ApplicationStore interface {
	AddVolunteerApplication(ctx context.Context, data model.Record) (model.Record, error)
	GetVolunteerApplications(ctx context.Context, f model.Filter) ([]model.Record, error)
	UpdateVolunteerApplication(ctx context.Context, id string, updates model.Record) (model.Record, error)
}

// DonationRecorder counts donations. metrics.Collector implements it.
type DonationRecorder interface {
	RecordDonation(amount float64)
}

// EventEmitter publishes domain events. *service.Events implements it.
type EventEmitter interface {
	Emit(ctx context.Context, typ, id string, payload map[string]any)
}

type nopEmitter struct{}

func (nopEmitter) Emit(context.Context, string, string, map[string]any) {}

type nopRecorder struct{}

func (nopRecorder) RecordDonation(float64) {}
