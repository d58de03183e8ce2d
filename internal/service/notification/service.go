package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/notification-dispatcher/internal/repository/status"
)

// ErrPublishFailed marks an intake rejected because the queue fabric was
// unreachable. The status record created by the same call is rolled back, so
// the caller can safely retry the submission.
var ErrPublishFailed = errors.New("failed to publish notification")

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type statusRepository interface {
	Create(ctx context.Context, rec model.StatusRecord) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.StatusRecord, error)
	GetByRequestID(ctx context.Context, requestID string) (model.StatusRecord, error)
	GetBulk(ctx context.Context, ids []uuid.UUID) ([]model.StatusRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, st model.Status, errText string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.StatusRecord, error)
	ListByStatus(ctx context.Context, st model.Status) ([]model.StatusRecord, error)
	Stats(ctx context.Context) (model.StatusStats, error)
}

type messagePublisher interface {
	Publish(msg queue.Message, strategy retry.Strategy) error
}

type dedupIndex interface {
	Lookup(ctx context.Context, strategy retry.Strategy, requestID string) (uuid.UUID, bool, error)
	MarkProcessed(ctx context.Context, strategy retry.Strategy, requestID string, notificationID uuid.UUID) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// SubmitResult is the intake outcome for one channel-bound notification.
type SubmitResult struct {
	NotificationID   uuid.UUID    `json:"notification_id"`
	Status           model.Status `json:"status"`
	RequestID        string       `json:"request_id"`
	AlreadyProcessed bool         `json:"-"`
}

// ChannelResult is one channel's outcome of a broadcast submission.
type ChannelResult struct {
	Channel        model.Channel `json:"channel"`
	NotificationID uuid.UUID     `json:"notification_id,omitempty"`
	Status         model.Status  `json:"status,omitempty"`
	RequestID      string        `json:"request_id"`
	Error          string        `json:"error,omitempty"`
}

// BulkResult splits a bulk status query into found records and missing ids.
type BulkResult struct {
	Found       []model.StatusRecord `json:"found"`
	NotFoundIDs []uuid.UUID          `json:"not_found_ids"`
}

// MaxBulkIDs bounds a single bulk status query.
const MaxBulkIDs = 100

// Service implements notification intake and the status store contract.
type Service struct {
	repo  statusRepository
	queue messagePublisher
	dedup dedupIndex
	cache cache
}

// NewService creates a notification service.
func NewService(repo statusRepository, q messagePublisher, dedup dedupIndex, c cache) *Service {
	return &Service{repo: repo, queue: q, dedup: dedup, cache: c}
}

// Submit validates, deduplicates, persists and publishes one notification.
//
// The dedup index answers the hot path; the status store's unique request_id
// is the atomic guard under races. The index is marked only after both the
// status write and the publish succeed, and a failed publish rolls back the
// record created by this call so client retries of intake stay safe.
func (s *Service) Submit(ctx context.Context, strategy retry.Strategy, req model.NotificationRequest) (SubmitResult, error) {
	if err := req.Validate(); err != nil {
		return SubmitResult{}, err
	}

	// A caller without a request id forgoes dedup protection; a synthetic id
	// avoids accidental collisions on the unique column.
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	if id, found, err := s.dedup.Lookup(ctx, strategy, req.RequestID); err != nil {
		zlog.Logger.Warn().Err(err).Str("request_id", req.RequestID).Msg("dedup lookup failed, falling through to store")
	} else if found {
		rec, err := s.repo.GetByID(ctx, id)
		if err == nil {
			return SubmitResult{
				NotificationID:   rec.NotificationID,
				Status:           rec.Status,
				RequestID:        rec.RequestID,
				AlreadyProcessed: true,
			}, nil
		}

		zlog.Logger.Warn().Err(err).Str("request_id", req.RequestID).Msg("dedup index points at missing record")
	}

	rec := model.StatusRecord{
		NotificationID: uuid.New(),
		UserID:         req.UserID,
		Channel:        req.Channel,
		Recipient:      req.Recipient(),
		RequestID:      req.RequestID,
		TemplateCode:   req.TemplateCode,
		Status:         model.StatusPending,
		RetryCount:     0,
	}

	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, status.ErrDuplicateRequest) {
			existing, getErr := s.repo.GetByRequestID(ctx, req.RequestID)
			if getErr != nil {
				return SubmitResult{}, fmt.Errorf("get existing notification: %w", getErr)
			}

			return SubmitResult{
				NotificationID:   existing.NotificationID,
				Status:           existing.Status,
				RequestID:        existing.RequestID,
				AlreadyProcessed: true,
			}, nil
		}

		return SubmitResult{}, fmt.Errorf("create notification: %w", err)
	}

	msg := queue.Message{
		NotificationID: id,
		UserID:         req.UserID,
		Channel:        req.Channel,
		Email:          req.Email,
		PushToken:      req.PushToken,
		TemplateCode:   req.TemplateCode,
		Variables:      req.Variables,
		RequestID:      req.RequestID,
		Priority:       req.Priority,
		Metadata:       req.Metadata,
		CreatedAt:      time.Now().UTC(),
		RetryCount:     0,
	}

	if err := s.queue.Publish(msg, strategy); err != nil {
		if delErr := s.repo.Delete(ctx, id); delErr != nil {
			zlog.Logger.Error().Err(delErr).Str("id", id.String()).Msg("failed to roll back notification after publish failure")
		}

		return SubmitResult{}, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	if err := s.dedup.MarkProcessed(ctx, strategy, req.RequestID, id); err != nil {
		// The unique request_id column still protects against duplicates.
		zlog.Logger.Warn().Err(err).Str("request_id", req.RequestID).Msg("failed to mark request id processed")
	}

	return SubmitResult{NotificationID: id, Status: model.StatusPending, RequestID: req.RequestID}, nil
}

// SubmitBroadcast submits one notification per channel with independent
// notification ids and suffixed request ids. Channels are processed
// independently; one channel's failure never blocks the others.
func (s *Service) SubmitBroadcast(ctx context.Context, strategy retry.Strategy, req model.BroadcastRequest) []ChannelResult {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	results := make([]ChannelResult, 0, len(model.Channels))

	for _, ch := range model.Channels {
		chReq := req.ChannelRequest(ch)

		res, err := s.Submit(ctx, strategy, chReq)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("channel", string(ch)).Str("request_id", chReq.RequestID).Msg("broadcast channel failed")
			results = append(results, ChannelResult{
				Channel:   ch,
				RequestID: chReq.RequestID,
				Error:     err.Error(),
			})
			continue
		}

		results = append(results, ChannelResult{
			Channel:        ch,
			NotificationID: res.NotificationID,
			Status:         res.Status,
			RequestID:      res.RequestID,
		})
	}

	return results
}

// GetStatusByID returns one status record, trying the cache before the store.
func (s *Service) GetStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.StatusRecord, error) {
	raw, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification from cache")
	}

	if err == nil {
		var rec model.StatusRecord
		if unmarshalErr := json.Unmarshal([]byte(raw), &rec); unmarshalErr == nil {
			return rec, nil
		}
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.StatusRecord{}, fmt.Errorf("get notification status: %w", err)
	}

	s.cacheRecord(ctx, strategy, rec)

	return rec, nil
}

// GetBulk resolves up to MaxBulkIDs notification ids into found records and
// the exact set of missing ids.
func (s *Service) GetBulk(ctx context.Context, ids []uuid.UUID) (BulkResult, error) {
	if len(ids) == 0 {
		return BulkResult{}, fmt.Errorf("%w: notification_ids cannot be empty", model.ErrInvalidRequest)
	}

	if len(ids) > MaxBulkIDs {
		return BulkResult{}, fmt.Errorf("%w: maximum %d notification ids allowed per request", model.ErrInvalidRequest, MaxBulkIDs)
	}

	records, err := s.repo.GetBulk(ctx, ids)
	if err != nil {
		return BulkResult{}, fmt.Errorf("get notifications in bulk: %w", err)
	}

	found := make(map[uuid.UUID]struct{}, len(records))
	for _, rec := range records {
		found[rec.NotificationID] = struct{}{}
	}

	result := BulkResult{Found: records, NotFoundIDs: []uuid.UUID{}}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFoundIDs = append(result.NotFoundIDs, id)
		}
	}

	return result, nil
}

// ListByUser returns a user's notifications, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.StatusRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	records, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications by user: %w", err)
	}

	return records, nil
}

// ListByStatus returns all notifications in the given lifecycle state.
func (s *Service) ListByStatus(ctx context.Context, st model.Status) ([]model.StatusRecord, error) {
	if !st.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", model.ErrInvalidRequest, st)
	}

	records, err := s.repo.ListByStatus(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("list notifications by status: %w", err)
	}

	return records, nil
}

// Stats aggregates notification counts by status and channel.
func (s *Service) Stats(ctx context.Context) (model.StatusStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return model.StatusStats{}, fmt.Errorf("get notification stats: %w", err)
	}

	return stats, nil
}

// MarkDelivered records a successful delivery.
func (s *Service) MarkDelivered(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	return s.UpdateStatus(ctx, strategy, id, model.StatusDelivered, "")
}

// MarkRetrying records a failed attempt short of the retry bound; the store
// increments retry_count on the transition back to pending.
func (s *Service) MarkRetrying(ctx context.Context, strategy retry.Strategy, id uuid.UUID, errText string) error {
	return s.UpdateStatus(ctx, strategy, id, model.StatusPending, errText)
}

// MarkFailed records an exhausted delivery.
func (s *Service) MarkFailed(ctx context.Context, strategy retry.Strategy, id uuid.UUID, errText string) error {
	return s.UpdateStatus(ctx, strategy, id, model.StatusFailed, errText)
}

// UpdateStatus applies a lifecycle transition as an idempotent upsert and
// refreshes the cache. Safe under redelivery: re-applying the same terminal
// status is a no-op.
func (s *Service) UpdateStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, st model.Status, errText string) error {
	if !st.Valid() {
		return fmt.Errorf("%w: unknown status %q", model.ErrInvalidRequest, st)
	}

	if err := s.repo.UpdateStatus(ctx, id, st, errText); err != nil {
		return fmt.Errorf("update notification status: %w", err)
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("failed to reload notification for cache")
		return nil
	}

	s.cacheRecord(ctx, strategy, rec)

	return nil
}

func (s *Service) cacheRecord(ctx context.Context, strategy retry.Strategy, rec model.StatusRecord) {
	raw, err := json.Marshal(rec)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", rec.NotificationID.String()).Msg("failed to marshal notification for cache")
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, rec.NotificationID.String(), string(raw)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", rec.NotificationID.String()).Msg("failed to cache notification")
	}
}
