package contact

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dinakaran-k/portfolio-api/internal/application/service"
	"github.com/dinakaran-k/portfolio-api/internal/config"
	"github.com/dinakaran-k/portfolio-api/internal/domain/contact"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type SendMessageUseCase struct {
	mailer contact.Mailer
	events service.EventPublisher
	cfg    config.Config
	logger logger.Logger
}

func NewSendMessageUseCase(mailer contact.Mailer, events service.EventPublisher, cfg config.Config, log logger.Logger) *SendMessageUseCase {
	return &SendMessageUseCase{
		mailer: mailer,
		events: events,
		cfg:    cfg,
		logger: log,
	}
}

type SendMessageInput struct {
	Message contact.Message
}

// Execute validates the submission, checks the transport configuration,
// then delivers synchronously. Validation and configuration problems are
// rejected before any side effect; a delivery failure is surfaced to the
// caller and not retried.
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) error {
	msg := input.Message

	if missing := msg.MissingFields(); len(missing) > 0 {
		return apperror.NewInvalidInput(
			fmt.Sprintf("required fields missing: %s", strings.Join(missing, ", ")), nil)
	}

	smtp := uc.cfg.SMTP
	if smtp.Host == "" || smtp.Username == "" || smtp.Password == "" || smtp.To == "" {
		return apperror.NewNotConfigured("email transport",
			"set SMTP_HOST, SMTP_USER, SMTP_PASS and CONTACT_TO_EMAIL")
	}

	from := smtp.From
	if from == "" {
		from = smtp.Username
	}

	mail := contact.Mail{
		From:    from,
		To:      smtp.To,
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Portfolio Contact: %s", msg.Name),
		Text:    msg.Message,
		HTML: fmt.Sprintf("<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p>%s</p>",
			html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message)),
	}

	if err := uc.mailer.Send(ctx, mail); err != nil {
		return apperror.NewInternal("contact message delivery failed", err)
	}

	if uc.events != nil {
		event := service.ContactEvent{Name: msg.Name, Email: msg.Email, At: time.Now().UTC()}
		if err := uc.events.PublishContact(ctx, event); err != nil {
			uc.logger.Warn("failed to publish contact event", zap.Error(err))
		}
	}

	return nil
}
