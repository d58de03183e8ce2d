package notification

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
	"github.com/aliskhannn/notification-dispatcher/internal/repository/status"
	notifsvc "github.com/aliskhannn/notification-dispatcher/internal/service/notification"
)

// notificationService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Submit(ctx context.Context, strategy retry.Strategy, req model.NotificationRequest) (notifsvc.SubmitResult, error)
	SubmitBroadcast(ctx context.Context, strategy retry.Strategy, req model.BroadcastRequest) []notifsvc.ChannelResult
	GetStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.StatusRecord, error)
	GetBulk(ctx context.Context, ids []uuid.UUID) (notifsvc.BulkResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.StatusRecord, error)
	ListByStatus(ctx context.Context, st model.Status) ([]model.StatusRecord, error)
	Stats(ctx context.Context) (model.StatusStats, error)
	UpdateStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, st model.Status, errText string) error
}

// Handler handles HTTP requests of the notification intake and status API.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest represents the JSON body of a notification submission.
type CreateRequest struct {
	Channel      string            `json:"channel" validate:"required"`
	UserID       string            `json:"user_id" validate:"required,uuid"`
	Email        string            `json:"email" validate:"omitempty,email"`
	PushToken    string            `json:"push_token"`
	TemplateCode string            `json:"template_code" validate:"required"`
	Variables    map[string]string `json:"variables"`
	RequestID    string            `json:"request_id"`
	Priority     int               `json:"priority"`
	Metadata     map[string]string `json:"metadata"`
}

// BroadcastRequest represents the JSON body of a broadcast submission.
type BroadcastRequest struct {
	UserID            string            `json:"user_id" validate:"required,uuid"`
	Email             string            `json:"email" validate:"omitempty,email"`
	PushToken         string            `json:"push_token"`
	EmailTemplateCode string            `json:"email_template_code" validate:"required"`
	PushTemplateCode  string            `json:"push_template_code" validate:"required"`
	Variables         map[string]string `json:"variables"`
	RequestID         string            `json:"request_id"`
	Priority          int               `json:"priority"`
	Metadata          map[string]string `json:"metadata"`
}

// BulkStatusRequest represents the JSON body of a bulk status query.
type BulkStatusRequest struct {
	NotificationIDs []string `json:"notification_ids" validate:"required,min=1,max=100,dive,uuid"`
}

// UpdateStatusRequest represents the JSON body of an internal status update.
type UpdateStatusRequest struct {
	NotificationID string `json:"notification_id" validate:"required,uuid"`
	Status         string `json:"status" validate:"required"`
	Error          string `json:"error"`
}

// Create handles POST requests submitting one notification.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

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

	userID, _ := uuid.Parse(req.UserID)

	res, err := h.service.Submit(c.Request.Context(), h.cfg.Retry, model.NotificationRequest{
		Channel:      model.Channel(req.Channel),
		UserID:       userID,
		Email:        req.Email,
		PushToken:    req.PushToken,
		TemplateCode: req.TemplateCode,
		Variables:    req.Variables,
		RequestID:    req.RequestID,
		Priority:     req.Priority,
		Metadata:     req.Metadata,
	})
	if err != nil {
		h.failSubmit(c, err)
		return
	}

	if res.AlreadyProcessed {
		respond.OK(c.Writer, res, "notification already processed (duplicate request_id)")
		return
	}

	respond.Created(c.Writer, res, "notification queued successfully")
}

// CreateBroadcast handles POST requests fanning one submission out to every
// channel.
func (h *Handler) CreateBroadcast(c *ginext.Context) {
	var req BroadcastRequest

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

	userID, _ := uuid.Parse(req.UserID)

	results := h.service.SubmitBroadcast(c.Request.Context(), h.cfg.Retry, model.BroadcastRequest{
		UserID:            userID,
		Email:             req.Email,
		PushToken:         req.PushToken,
		EmailTemplateCode: req.EmailTemplateCode,
		PushTemplateCode:  req.PushTemplateCode,
		Variables:         req.Variables,
		RequestID:         req.RequestID,
		Priority:          req.Priority,
		Metadata:          req.Metadata,
	})

	respond.Created(c.Writer, results, "broadcast queued")
}

// GetStatus handles GET requests for one notification's status record.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c, c.Param("id"))
	if !ok {
		return
	}

	rec, err := h.service.GetStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, status.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, rec, "status retrieved successfully")
}

// GetBulkStatus handles POST requests resolving up to 100 ids at once.
// Missing ids are reported in the response meta rather than failing the call.
func (h *Handler) GetBulkStatus(c *ginext.Context) {
	var req BulkStatusRequest

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

	result, err := h.service.GetBulk(c.Request.Context(), ids)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRequest) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get bulk notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	meta := map[string]interface{}{
		"requested":     len(ids),
		"found":         len(result.Found),
		"not_found":     len(result.NotFoundIDs),
		"not_found_ids": result.NotFoundIDs,
	}

	respond.OKMeta(c.Writer, result.Found, fmt.Sprintf("retrieved %d notification statuses", len(result.Found)), meta)
}

// UpdateStatus handles PATCH requests applying a lifecycle transition. Used
// by workers deployed without direct store access.
func (h *Handler) UpdateStatus(c *ginext.Context) {
	var req UpdateStatusRequest

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

	id, _ := uuid.Parse(req.NotificationID)

	err := h.service.UpdateStatus(c.Request.Context(), h.cfg.Retry, id, model.Status(req.Status), req.Error)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidRequest):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, status.ErrNotificationNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
		default:
			zlog.Logger.Error().Err(err).Str("id", req.NotificationID).Msg("failed to update notification status")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, nil, "status updated successfully")
}

// ListByUser handles GET requests for a user's notifications.
func (h *Handler) ListByUser(c *ginext.Context) {
	userID, ok := h.parseID(c, c.Param("user_id"))
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = parsed
	}

	records, err := h.service.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list user notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, records, fmt.Sprintf("found %d notifications for user", len(records)))
}

// ListByStatus handles GET requests listing notifications in one lifecycle
// state.
func (h *Handler) ListByStatus(c *ginext.Context) {
	st := model.Status(c.Param("status"))

	records, err := h.service.ListByStatus(c.Request.Context(), st)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRequest) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("status", string(st)).Msg("failed to list notifications by status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, records, fmt.Sprintf("found %d notifications with status %s", len(records), st))
}

// Stats handles GET requests for aggregate notification counts.
func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get notification stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats, "statistics retrieved successfully")
}

func (h *Handler) failSubmit(c *ginext.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidRequest):
		zlog.Logger.Warn().Err(err).Msg("invalid notification request")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	case errors.Is(err, notifsvc.ErrPublishFailed):
		zlog.Logger.Error().Err(err).Msg("queue fabric unavailable")
		respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("failed to queue notification, retry later"))
	default:
		zlog.Logger.Error().Err(err).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func (h *Handler) parseID(c *ginext.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		zlog.Logger.Warn().Str("id", raw).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
