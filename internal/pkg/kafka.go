package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Event is the JSON envelope written to the events topic.
type Event struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	OccurredAt string         `json:"occurredAt"`
	Payload    map[string]any `json:"payload,omitempty"`
}

const (
	EventUserRegistered       = "user.registered"
	EventDonationCreated      = "donation.created"
	EventApplicationCreated   = "application.created"
	EventApplicationReviewed  = "application.reviewed"
	EventPasswordResetRequest = "password.reset_requested"
)

type Publisher interface {
	Publish(ctx context.Context, key string, event Event) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka: topic required")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 3 * time.Second,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *KafkaProducer) Send(ctx context.Context, key string, value []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Publish encodes event as JSON and writes it keyed by key, so events for
// one record land on the same partition.
func (p *KafkaProducer) Publish(ctx context.Context, key string, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	return p.Send(ctx, key, value)
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, Event) error { return nil }
func (NopPublisher) Close() error                                 { return nil }
