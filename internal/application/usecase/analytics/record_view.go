package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dinakaran-k/portfolio-api/internal/application/service"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type RecordViewUseCase struct {
	events service.EventPublisher
	logger logger.Logger
}

func NewRecordViewUseCase(events service.EventPublisher, log logger.Logger) *RecordViewUseCase {
	return &RecordViewUseCase{events: events, logger: log}
}

type RecordViewInput struct {
	Type string
	Path string
}

// Execute accepts the event and publishes it best effort. A broker
// failure is logged, not returned: analytics must never break the page.
func (uc *RecordViewUseCase) Execute(ctx context.Context, input RecordViewInput) error {
	if input.Type == "" {
		return apperror.NewInvalidInput("event type is required", nil)
	}

	event := service.ViewEvent{Type: input.Type, Path: input.Path, At: time.Now().UTC()}
	if err := uc.events.PublishView(ctx, event); err != nil {
		uc.logger.Warn("failed to publish view event",
			zap.String("type", input.Type), zap.String("path", input.Path), zap.Error(err))
	}
	return nil
}
