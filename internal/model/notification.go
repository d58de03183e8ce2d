package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Channel is a notification delivery medium.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// Channels lists every supported delivery channel.
var Channels = []Channel{ChannelEmail, ChannelPush}

// Valid reports whether the channel is one of the supported kinds.
func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelPush
}

// QueueName returns the fabric queue the channel's messages are routed to.
func (c Channel) QueueName() string {
	return string(c) + ".queue"
}

// Status is the lifecycle state of a notification.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Valid reports whether the status is a known lifecycle state.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusDelivered || s == StatusFailed
}

// NotificationRequest is a client submission for a single channel.
type NotificationRequest struct {
	Channel      Channel           `json:"channel"`
	UserID       uuid.UUID         `json:"user_id"`
	Email        string            `json:"email,omitempty"`
	PushToken    string            `json:"push_token,omitempty"`
	TemplateCode string            `json:"template_code"`
	Variables    map[string]string `json:"variables"`
	RequestID    string            `json:"request_id"`
	Priority     int               `json:"priority"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Recipient returns the channel-appropriate delivery address.
func (r NotificationRequest) Recipient() string {
	if r.Channel == ChannelPush {
		return r.PushToken
	}
	return r.Email
}

// Validate enforces the strict intake rules: a supported channel, the
// recipient field matching that channel, and a non-empty template code.
func (r NotificationRequest) Validate() error {
	if !r.Channel.Valid() {
		return fmt.Errorf("%w: unsupported channel %q", ErrInvalidRequest, r.Channel)
	}

	if r.Channel == ChannelEmail && r.Email == "" {
		return fmt.Errorf("%w: email is required for the email channel", ErrInvalidRequest)
	}

	if r.Channel == ChannelPush && r.PushToken == "" {
		return fmt.Errorf("%w: push_token is required for the push channel", ErrInvalidRequest)
	}

	if r.TemplateCode == "" {
		return fmt.Errorf("%w: template_code is required", ErrInvalidRequest)
	}

	return nil
}

// BroadcastRequest fans a single submission out to every channel, each with
// its own template code.
type BroadcastRequest struct {
	UserID            uuid.UUID         `json:"user_id"`
	Email             string            `json:"email,omitempty"`
	PushToken         string            `json:"push_token,omitempty"`
	EmailTemplateCode string            `json:"email_template_code"`
	PushTemplateCode  string            `json:"push_template_code"`
	Variables         map[string]string `json:"variables"`
	RequestID         string            `json:"request_id"`
	Priority          int               `json:"priority"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// ChannelRequest derives the per-channel NotificationRequest. The request id
// is suffixed with the channel so dedup and status tracking stay independent.
func (r BroadcastRequest) ChannelRequest(ch Channel) NotificationRequest {
	code := r.EmailTemplateCode
	if ch == ChannelPush {
		code = r.PushTemplateCode
	}

	return NotificationRequest{
		Channel:      ch,
		UserID:       r.UserID,
		Email:        r.Email,
		PushToken:    r.PushToken,
		TemplateCode: code,
		Variables:    r.Variables,
		RequestID:    fmt.Sprintf("%s:%s", r.RequestID, ch),
		Priority:     r.Priority,
		Metadata:     r.Metadata,
	}
}

// StatusRecord is the durable lifecycle state of one notification.
type StatusRecord struct {
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	Channel        Channel   `json:"channel"`
	Recipient      string    `json:"recipient"`
	RequestID      string    `json:"request_id"`
	TemplateCode   string    `json:"template_code"`
	Status         Status    `json:"status"`
	RetryCount     int       `json:"retry_count"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FailedMessage is a dead-lettered notification retained for inspection.
type FailedMessage struct {
	NotificationID uuid.UUID         `json:"notification_id"`
	UserID         uuid.UUID         `json:"user_id"`
	Channel        Channel           `json:"channel"`
	Recipient      string            `json:"recipient"`
	TemplateCode   string            `json:"template_code"`
	Variables      map[string]string `json:"variables"`
	RequestID      string            `json:"request_id"`
	Priority       int               `json:"priority"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	RetryCount     int               `json:"retry_count"`
	Error          string            `json:"error"`
	ErrorCategory  ErrorCategory     `json:"error_category"`
	OriginalQueue  string            `json:"original_queue"`
	CreatedAt      time.Time         `json:"created_at"`
	FailedAt       time.Time         `json:"failed_at"`
}

// StatusStats aggregates notification counts by status and channel.
type StatusStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
	Email     int `json:"email"`
	Push      int `json:"push"`
}

// DeadLetterStats aggregates retained failures by channel and error category.
type DeadLetterStats struct {
	Total           int                   `json:"total"`
	ByChannel       map[Channel]int       `json:"by_channel"`
	ByCategory      map[ErrorCategory]int `json:"by_category"`
	OldestFailureAt *time.Time            `json:"oldest_failure_at,omitempty"`
}
