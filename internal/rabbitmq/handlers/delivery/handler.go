// Package delivery implements the per-message state machine of a channel
// worker: received → rendering → delivering → delivered, retry-scheduled or
// dead-lettered.
package delivery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/notification-dispatcher/internal/template"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/delivery/mock.go -package=mocks

type statusService interface {
	MarkDelivered(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
	MarkRetrying(ctx context.Context, strategy retry.Strategy, id uuid.UUID, errText string) error
	MarkFailed(ctx context.Context, strategy retry.Strategy, id uuid.UUID, errText string) error
}

type retryPublisher interface {
	PublishRetry(msg queue.Message, strategy retry.Strategy) error
	PublishFailed(msg queue.FailedMessage, strategy retry.Strategy) error
}

type templateFetcher interface {
	FetchByCode(ctx context.Context, code string) (template.Template, error)
}

// Provider delivers rendered content over one channel. Implementations wrap
// the external SMTP or FCM collaborator and return a model.DeliveryError
// carrying the channel's error category.
type Provider interface {
	Deliver(ctx context.Context, msg queue.Message, content template.Content) error
}

// Handler processes one channel's messages.
type Handler struct {
	service    statusService
	publisher  retryPublisher
	templates  templateFetcher
	provider   Provider
	maxRetries int
}

// NewHandler creates a delivery handler for one channel worker.
func NewHandler(svc statusService, pub retryPublisher, templates templateFetcher, provider Provider, maxRetries int) *Handler {
	return &Handler{
		service:    svc,
		publisher:  pub,
		templates:  templates,
		provider:   provider,
		maxRetries: maxRetries,
	}
}

// HandleMessage renders and delivers one message and records the outcome.
//
// Delivery failure short of the retry bound parks the message in the backoff
// tier matching its retry count; at the bound the message is dead-lettered
// with its accumulated retry count and error. Status writes are idempotent
// upserts, so redelivery after a crash is safe.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.Message, strategy retry.Strategy) {
	zlog.Logger.Info().
		Str("id", msg.NotificationID.String()).
		Str("channel", string(msg.Channel)).
		Int("retry_count", msg.RetryCount).
		Msg("processing notification")

	tmpl, err := h.templates.FetchByCode(ctx, msg.TemplateCode)
	if err != nil {
		// Non-fatal: deliver best-effort with the built-in template.
		zlog.Logger.Warn().Err(err).Str("template_code", msg.TemplateCode).Msg("template fetch failed, using fallback")
		tmpl = template.Fallback()
	}

	content := template.Render(tmpl, msg.Variables)

	deliverErr := h.provider.Deliver(ctx, msg, content)
	if deliverErr == nil {
		if err := h.service.MarkDelivered(ctx, strategy, msg.NotificationID); err != nil {
			zlog.Logger.Error().Err(err).Str("id", msg.NotificationID.String()).Msg("failed to set status=delivered")
		}

		zlog.Logger.Info().Str("id", msg.NotificationID.String()).Msg("notification delivered")
		return
	}

	msg.RetryCount++

	if msg.RetryCount < h.maxRetries {
		h.scheduleRetry(ctx, msg, deliverErr, strategy)
		return
	}

	h.deadLetter(ctx, msg, deliverErr, strategy)
}

func (h *Handler) scheduleRetry(ctx context.Context, msg queue.Message, deliverErr error, strategy retry.Strategy) {
	zlog.Logger.Warn().
		Err(deliverErr).
		Str("id", msg.NotificationID.String()).
		Int("retry_count", msg.RetryCount).
		Int("max_retries", h.maxRetries).
		Msg("delivery failed, scheduling retry")

	if err := h.service.MarkRetrying(ctx, strategy, msg.NotificationID, deliverErr.Error()); err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.NotificationID.String()).Msg("failed to set status=pending for retry")
	}

	if err := h.publisher.PublishRetry(msg, strategy); err != nil {
		// The retry could not be made durable; dead-letter instead of
		// dropping the message.
		zlog.Logger.Error().Err(err).Str("id", msg.NotificationID.String()).Msg("failed to publish retry, dead-lettering")
		h.deadLetter(ctx, msg, deliverErr, strategy)
	}
}

func (h *Handler) deadLetter(ctx context.Context, msg queue.Message, deliverErr error, strategy retry.Strategy) {
	zlog.Logger.Error().
		Err(deliverErr).
		Str("id", msg.NotificationID.String()).
		Int("retry_count", msg.RetryCount).
		Msg("retries exhausted, moving to dead-letter queue")

	if err := h.service.MarkFailed(ctx, strategy, msg.NotificationID, deliverErr.Error()); err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.NotificationID.String()).Msg("failed to set status=failed")
	}

	failed := queue.FailedMessage{
		Message:       msg,
		Error:         deliverErr.Error(),
		ErrorCategory: model.CategoryOf(deliverErr),
		OriginalQueue: msg.Channel.QueueName(),
		FailedAt:      time.Now().UTC(),
	}

	if err := h.publisher.PublishFailed(failed, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.NotificationID.String()).Msg("failed to publish dead-letter message")
	}
}
