package deadletter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/api/respond"
	"github.com/aliskhannn/notification-dispatcher/internal/config"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	dlrepo "github.com/aliskhannn/notification-dispatcher/internal/repository/deadletter"
	dlsvc "github.com/aliskhannn/notification-dispatcher/internal/service/deadletter"
)

// deadLetterService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/deadletter/mock.go -package=mocks
type deadLetterService interface {
	List(ctx context.Context, limit int) ([]model.FailedMessage, error)
	Get(ctx context.Context, id uuid.UUID) (model.FailedMessage, error)
	Retry(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
	RetryBulk(ctx context.Context, strategy retry.Strategy, ids []uuid.UUID) dlsvc.BulkRetryResult
	Clear(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (model.DeadLetterStats, error)
}

// Handler handles HTTP requests of the dead-letter operator API.
type Handler struct {
	service   deadLetterService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s deadLetterService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// BulkRetryRequest represents the JSON body of a bulk requeue request.
type BulkRetryRequest struct {
	NotificationIDs []string `json:"notification_ids" validate:"required,min=1,dive,uuid"`
}

// List handles GET requests for retained failed messages, newest first.
func (h *Handler) List(c *ginext.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = parsed
	}

	messages, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list dead-letter messages")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, messages, fmt.Sprintf("found %d failed messages", len(messages)))
}

// Get handles GET requests for one retained failed message.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	msg, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, dlrepo.ErrFailedMessageNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("failed message not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get dead-letter message")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, msg, "failed message retrieved successfully")
}

// Retry handles POST requests requeueing one retained message to its
// original channel queue.
func (h *Handler) Retry(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Retry(c.Request.Context(), h.cfg.Retry, id); err != nil {
		if errors.Is(err, dlrepo.ErrFailedMessageNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("failed message not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to requeue dead-letter message")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, nil, "failed message requeued successfully")
}

// RetryBulk handles POST requests requeueing several retained messages; each
// id is processed independently and the response tallies the outcome.
func (h *Handler) RetryBulk(c *ginext.Context) {
	var req BulkRetryRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	ids := make([]uuid.UUID, 0, len(req.NotificationIDs))
	for _, raw := range req.NotificationIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid notification id %q", raw))
			return
		}

		ids = append(ids, id)
	}

	result := h.service.RetryBulk(c.Request.Context(), h.cfg.Retry, ids)

	respond.OK(c.Writer, result, fmt.Sprintf("requeued %d of %d failed messages", result.Success, len(ids)))
}

// Clear handles DELETE requests removing a retained message without
// requeueing it.
func (h *Handler) Clear(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Clear(c.Request.Context(), id); err != nil {
		if errors.Is(err, dlrepo.ErrFailedMessageNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("failed message not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to clear dead-letter message")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, nil, "failed message cleared successfully")
}

// Stats handles GET requests aggregating retained failures by channel and
// error category.
func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get dead-letter stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats, "statistics retrieved successfully")
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("id", c.Param("id")).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
