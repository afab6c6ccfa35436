package pkg

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // display sender, may equal Username
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	return d.DialAndSend(m)
}

func ResetCodeHTML(name, code string, ttl time.Duration) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`<p>Hi %s,</p><p>Your password reset code is <b style="font-size:18px;">%s</b>.</p><p>It expires in %d minutes. If you did not ask for a reset you can ignore this email.</p>`,
		html.EscapeString(name), code, int(ttl.Minutes()))
}

// SMTPNotifier delivers password reset codes by email.
type SMTPNotifier struct {
	cfg  SMTPConfig
	send func(cfg SMTPConfig, to, subject, htmlBody string) error
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, send: SendEmail}
}

func (n *SMTPNotifier) SendResetCode(ctx context.Context, email, name, code string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body := ResetCodeHTML(name, code, ttl)
	if err := n.send(n.cfg, email, "Your password reset code", body); err != nil {
		return fmt.Errorf("send reset code: %w", err)
	}
	return nil
}
