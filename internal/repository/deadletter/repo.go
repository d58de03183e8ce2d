package deadletter

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

var ErrFailedMessageNotFound = errors.New("failed message not found")

// Repository retains dead-lettered messages in the failed_messages table,
// keyed by notification id.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new dead-letter repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Save retains a failed message. Redelivery of the same notification id
// overwrites the previous entry with the fresher error and timestamp.
func (r *Repository) Save(ctx context.Context, msg model.FailedMessage) error {
	query := `
		INSERT INTO failed_messages (
		    notification_id, user_id, channel, recipient, template_code, variables,
		    request_id, priority, metadata, retry_count, error, error_category,
		    original_queue, created_at, failed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (notification_id) DO UPDATE
		SET retry_count = EXCLUDED.retry_count,
		    error = EXCLUDED.error,
		    error_category = EXCLUDED.error_category,
		    failed_at = EXCLUDED.failed_at;
    `

	variables, err := json.Marshal(msg.Variables)
	if err != nil {
		return fmt.Errorf("failed to marshal variables: %w", err)
	}

	metadata, err := json.Marshal(msg.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = r.db.ExecContext(
		ctx, query,
		msg.NotificationID, msg.UserID, msg.Channel, msg.Recipient, msg.TemplateCode,
		variables, msg.RequestID, msg.Priority, metadata, msg.RetryCount,
		msg.Error, msg.ErrorCategory, msg.OriginalQueue, msg.CreatedAt, msg.FailedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save failed message: %w", err)
	}

	return nil
}

// List returns retained messages newest-first, bounded by limit.
func (r *Repository) List(ctx context.Context, limit int) ([]model.FailedMessage, error) {
	query := `
		SELECT notification_id, user_id, channel, recipient, template_code, variables,
		       request_id, priority, metadata, retry_count, error, error_category,
		       original_queue, created_at, failed_at
		FROM failed_messages
		ORDER BY failed_at DESC
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list failed messages: %w", err)
	}
	defer rows.Close()

	var messages []model.FailedMessage
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}

		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

// Get returns one retained message by notification id.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (model.FailedMessage, error) {
	query := `
		SELECT notification_id, user_id, channel, recipient, template_code, variables,
		       request_id, priority, metadata, retry_count, error, error_category,
		       original_queue, created_at, failed_at
		FROM failed_messages
		WHERE notification_id = $1;
    `

	var (
		msg                 model.FailedMessage
		variables, metadata []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&msg.NotificationID, &msg.UserID, &msg.Channel, &msg.Recipient, &msg.TemplateCode,
		&variables, &msg.RequestID, &msg.Priority, &metadata, &msg.RetryCount,
		&msg.Error, &msg.ErrorCategory, &msg.OriginalQueue, &msg.CreatedAt, &msg.FailedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FailedMessage{}, ErrFailedMessageNotFound
		}

		return model.FailedMessage{}, fmt.Errorf("failed to get failed message: %w", err)
	}

	if err := unmarshalMaps(&msg, variables, metadata); err != nil {
		return model.FailedMessage{}, err
	}

	return msg, nil
}

// Delete removes a retained message.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM failed_messages
		WHERE notification_id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete failed message: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrFailedMessageNotFound
	}

	return nil
}

// Stats aggregates retained failures by channel and error category, plus the
// oldest retained failure timestamp.
func (r *Repository) Stats(ctx context.Context) (model.DeadLetterStats, error) {
	query := `
		SELECT channel, error_category, COUNT(*), MIN(failed_at)
		FROM failed_messages
		GROUP BY channel, error_category;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return model.DeadLetterStats{}, fmt.Errorf("failed to get dead letter stats: %w", err)
	}
	defer rows.Close()

	stats := model.DeadLetterStats{
		ByChannel:  make(map[model.Channel]int),
		ByCategory: make(map[model.ErrorCategory]int),
	}

	for rows.Next() {
		var (
			channel  model.Channel
			category model.ErrorCategory
			count    int
			oldest   time.Time
		)
		if err := rows.Scan(&channel, &category, &count, &oldest); err != nil {
			return model.DeadLetterStats{}, err
		}

		stats.Total += count
		stats.ByChannel[channel] += count
		stats.ByCategory[category] += count

		if stats.OldestFailureAt == nil || oldest.Before(*stats.OldestFailureAt) {
			t := oldest
			stats.OldestFailureAt = &t
		}
	}

	return stats, rows.Err()
}

func scanMessage(rows *sql.Rows) (model.FailedMessage, error) {
	var (
		msg                 model.FailedMessage
		variables, metadata []byte
	)
	if err := rows.Scan(
		&msg.NotificationID, &msg.UserID, &msg.Channel, &msg.Recipient, &msg.TemplateCode,
		&variables, &msg.RequestID, &msg.Priority, &metadata, &msg.RetryCount,
		&msg.Error, &msg.ErrorCategory, &msg.OriginalQueue, &msg.CreatedAt, &msg.FailedAt,
	); err != nil {
		return model.FailedMessage{}, err
	}

	if err := unmarshalMaps(&msg, variables, metadata); err != nil {
		return model.FailedMessage{}, err
	}

	return msg, nil
}

func unmarshalMaps(msg *model.FailedMessage, variables, metadata []byte) error {
	if len(variables) > 0 {
		if err := json.Unmarshal(variables, &msg.Variables); err != nil {
			return fmt.Errorf("failed to unmarshal variables: %w", err)
		}
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &msg.Metadata); err != nil {
			return fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return nil
}
