package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/dinakaran-k/portfolio-api/internal/config"
	"github.com/dinakaran-k/portfolio-api/internal/domain/contact"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	log    logger.Logger
}

// NewSMTPMailer wraps the configured SMTP transport. Configuration
// completeness is checked by the contact use case before any send, so
// the constructor never fails.
func NewSMTPMailer(cfg config.Config, log logger.Logger) contact.Mailer {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	log.Info("SMTP mailer initialized")
	return &smtpMailer{dialer: dialer, log: log}
}

func (m *smtpMailer) Send(ctx context.Context, mail contact.Mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", mail.From)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Reply-To", mail.ReplyTo)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Text)
	msg.AddAlternative("text/html", mail.HTML)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}
	return nil
}
