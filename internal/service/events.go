package service

import (
	"context"
	"log/slog"
	"time"

	"NGO_Platform/internal/model"
	"NGO_Platform/internal/pkg"
)

const publishTimeout = 3 * time.Second

// Events publishes domain events best-effort. A failed publish is logged and
// never fails the request that caused it.
type Events struct {
	pub    pkg.Publisher
	logger *slog.Logger
	now    func() time.Time
}

func NewEvents(pub pkg.Publisher, logger *slog.Logger) *Events {
	if pub == nil {
		pub = pkg.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Events{pub: pub, logger: logger, now: time.Now}
}

func (e *Events) Emit(ctx context.Context, typ, id string, payload map[string]any) {
	if e == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	ev := pkg.Event{
		Type:       typ,
		ID:         id,
		OccurredAt: model.Timestamp(e.now()),
		Payload:    payload,
	}
	if err := e.pub.Publish(ctx, id, ev); err != nil {
		e.logger.Warn("event publish failed",
			slog.String("type", typ),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
	}
}
