package pkg

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestResetCodeHTML(t *testing.T) {
	body := ResetCodeHTML("<Ann>", "123456", 15*time.Minute)
	if !strings.Contains(body, "123456") {
		t.Errorf("body missing code: %s", body)
	}
	if !strings.Contains(body, "15 minutes") {
		t.Errorf("body missing ttl: %s", body)
	}
	if strings.Contains(body, "<Ann>") {
		t.Errorf("name not escaped: %s", body)
	}
}

func TestSMTPNotifier_SendResetCode(t *testing.T) {
	var gotTo, gotSubject string
	n := NewSMTPNotifier(SMTPConfig{Host: "smtp.example.com", Port: 587})
	n.send = func(cfg SMTPConfig, to, subject, htmlBody string) error {
		gotTo, gotSubject = to, subject
		return nil
	}

	if err := n.SendResetCode(context.Background(), "a@example.com", "Ann", "654321", time.Minute); err != nil {
		t.Fatalf("SendResetCode: %v", err)
	}
	if gotTo != "a@example.com" {
		t.Errorf("to = %q", gotTo)
	}
	if gotSubject == "" {
		t.Error("subject empty")
	}
}

func TestSMTPNotifier_WrapsSendError(t *testing.T) {
	boom := errors.New("dial failed")
	n := NewSMTPNotifier(SMTPConfig{Host: "smtp.example.com"})
	n.send = func(SMTPConfig, string, string, string) error { return boom }

	err := n.SendResetCode(context.Background(), "a@example.com", "", "111111", time.Minute)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestSMTPConfig_Enabled(t *testing.T) {
	if (SMTPConfig{}).Enabled() {
		t.Error("empty config should be disabled")
	}
	if !(SMTPConfig{Host: "smtp.example.com"}).Enabled() {
		t.Error("config with host should be enabled")
	}
}
