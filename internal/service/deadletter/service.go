package deadletter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/deadletter/mock.go -package=mocks

type failedRepository interface {
	Save(ctx context.Context, msg model.FailedMessage) error
	List(ctx context.Context, limit int) ([]model.FailedMessage, error)
	Get(ctx context.Context, id uuid.UUID) (model.FailedMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (model.DeadLetterStats, error)
}

type messagePublisher interface {
	Publish(msg queue.Message, strategy retry.Strategy) error
}

type failedConsumer interface {
	ConsumeFailed(ctx context.Context, out chan<- queue.FailedMessage, strategy retry.Strategy) error
}

// BulkRetryResult tallies an independent per-id requeue run.
type BulkRetryResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// Service drains the failed queue into durable retention and supports
// operator-driven inspection and requeueing.
type Service struct {
	repo     failedRepository
	queue    messagePublisher
	consumer failedConsumer
}

// NewService creates a dead-letter service.
func NewService(repo failedRepository, q messagePublisher, consumer failedConsumer) *Service {
	return &Service{repo: repo, queue: q, consumer: consumer}
}

// Run continuously drains the dead-letter queue until the context is
// cancelled. Messages without a notification id are malformed and are
// rejected after logging, never retried; well-formed messages are retained
// keyed by notification id with a fresh failed_at stamp.
func (s *Service) Run(ctx context.Context, strategy retry.Strategy) {
	msgChan := make(chan queue.FailedMessage)

	go func() {
		if err := s.consumer.ConsumeFailed(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume dead-letter queue")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("dead-letter consumer stopped")
			return
		case msg, ok := <-msgChan:
			if !ok {
				return
			}

			if msg.NotificationID == uuid.Nil {
				zlog.Logger.Error().Str("request_id", msg.RequestID).Msg("rejecting malformed dead-letter message without notification id")
				continue
			}

			retained := model.FailedMessage{
				NotificationID: msg.NotificationID,
				UserID:         msg.UserID,
				Channel:        msg.Channel,
				Recipient:      msg.Recipient(),
				TemplateCode:   msg.TemplateCode,
				Variables:      msg.Variables,
				RequestID:      msg.RequestID,
				Priority:       msg.Priority,
				Metadata:       msg.Metadata,
				RetryCount:     msg.RetryCount,
				Error:          msg.Error,
				ErrorCategory:  msg.ErrorCategory,
				OriginalQueue:  msg.OriginalQueue,
				CreatedAt:      msg.CreatedAt,
				FailedAt:       time.Now().UTC(),
			}

			if err := s.repo.Save(ctx, retained); err != nil {
				zlog.Logger.Error().Err(err).Str("id", msg.NotificationID.String()).Msg("failed to retain dead-letter message")
				continue
			}

			zlog.Logger.Warn().
				Str("id", msg.NotificationID.String()).
				Str("channel", string(msg.Channel)).
				Str("category", string(msg.ErrorCategory)).
				Msg("dead-letter message retained")
		}
	}
}

// List returns retained failed messages newest-first, bounded by limit.
func (s *Service) List(ctx context.Context, limit int) ([]model.FailedMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	messages, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list failed messages: %w", err)
	}

	return messages, nil
}

// Get returns one retained failed message.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.FailedMessage, error) {
	msg, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.FailedMessage{}, fmt.Errorf("get failed message: %w", err)
	}

	return msg, nil
}

// Retry re-publishes a retained message to its original channel queue with
// retry_count reset to zero, then removes it from retention.
func (s *Service) Retry(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	retained, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get failed message: %w", err)
	}

	msg := queue.Message{
		NotificationID: retained.NotificationID,
		UserID:         retained.UserID,
		Channel:        retained.Channel,
		TemplateCode:   retained.TemplateCode,
		Variables:      retained.Variables,
		RequestID:      retained.RequestID,
		Priority:       retained.Priority,
		Metadata:       retained.Metadata,
		CreatedAt:      time.Now().UTC(),
		RetryCount:     0,
	}

	if retained.Channel == model.ChannelPush {
		msg.PushToken = retained.Recipient
	} else {
		msg.Email = retained.Recipient
	}

	if err := s.queue.Publish(msg, strategy); err != nil {
		return fmt.Errorf("requeue failed message: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to remove requeued message from retention")
	}

	zlog.Logger.Info().Str("id", id.String()).Str("channel", string(retained.Channel)).Msg("failed message requeued")

	return nil
}

// RetryBulk applies Retry to each id independently; one failure never aborts
// the remaining items.
func (s *Service) RetryBulk(ctx context.Context, strategy retry.Strategy, ids []uuid.UUID) BulkRetryResult {
	var result BulkRetryResult

	for _, id := range ids {
		if err := s.Retry(ctx, strategy, id); err != nil {
			zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("bulk retry item failed")
			result.Failed++
			continue
		}

		result.Success++
	}

	return result
}

// Clear removes a retained message without requeueing it.
func (s *Service) Clear(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("clear failed message: %w", err)
	}

	return nil
}

// Stats aggregates retained failures by channel and error category.
func (s *Service) Stats(ctx context.Context) (model.DeadLetterStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return model.DeadLetterStats{}, fmt.Errorf("get dead letter stats: %w", err)
	}

	return stats, nil
}
