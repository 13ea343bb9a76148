package services

import (
	"context"
	"fmt"
	"net/smtp"

	"go-job-screening/internal/config"
)

// Mailer is the outbound notification collaborator: one recipient, one
// subject, one body, success or failure. No retry contract.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type smtpMailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromEmail: cfg.FromEmail,
	}
}

// Send implements Mailer. The blocking SMTP exchange runs on its own
// goroutine so the caller's deadline is honored even when the server hangs.
func (m *smtpMailer) Send(ctx context.Context, recipient, subject, body string) error {
	if m.host == "" || m.username == "" {
		return fmt.Errorf("smtp is not configured")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		m.fromEmail,
		recipient,
		subject,
		body,
	))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.fromEmail, []string{recipient}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email delivery timed out: %w", ctx.Err())
	}
}
