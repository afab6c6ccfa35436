package pkg

import (
	"context"
	"testing"
)

func TestNewKafkaProducer_RequiresBrokersAndTopic(t *testing.T) {
	if _, err := NewKafkaProducer(KafkaConfig{Topic: "t"}); err == nil {
		t.Error("expected error without brokers")
	}
	if _, err := NewKafkaProducer(KafkaConfig{Brokers: []string{"localhost:9092"}}); err == nil {
		t.Error("expected error without topic")
	}

	p, err := NewKafkaProducer(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "ngo-platform-events"})
	if err != nil {
		t.Fatalf("NewKafkaProducer: %v", err)
	}
	if p.topic != "ngo-platform-events" {
		t.Errorf("topic = %q", p.topic)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	if err := p.Publish(context.Background(), "1", Event{Type: EventDonationCreated}); err != nil {
		t.Errorf("Publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestKafkaProducer_NilClose(t *testing.T) {
	var p *KafkaProducer
	if err := p.Close(); err != nil {
		t.Errorf("Close on nil = %v", err)
	}
}
