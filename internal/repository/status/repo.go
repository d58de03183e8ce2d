package status

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDuplicateRequest     = errors.New("request id already processed")
)

const recordColumns = `
		id, user_id, channel, recipient, request_id, template_code,
		status, retry_count, COALESCE(error, ''), created_at, updated_at`

// Repository provides access to the notifications status table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new status repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new status record. The unique request_id constraint is
// the atomic dedup guard: a concurrent or repeated intake with the same
// request id hits the conflict path and gets ErrDuplicateRequest instead of
// a second row.
func (r *Repository) Create(ctx context.Context, rec model.StatusRecord) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    id, user_id, channel, recipient, request_id, template_code, status, retry_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (request_id) DO NOTHING
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query,
		rec.NotificationID, rec.UserID, rec.Channel, rec.Recipient,
		rec.RequestID, rec.TemplateCode, rec.Status, rec.RetryCount,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrDuplicateRequest
		}

		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// GetByID retrieves one status record by notification id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.StatusRecord, error) {
	query := `
		SELECT` + recordColumns + `
		FROM notifications
		WHERE id = $1;
    `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByRequestID retrieves one status record by its idempotency key.
func (r *Repository) GetByRequestID(ctx context.Context, requestID string) (model.StatusRecord, error) {
	query := `
		SELECT` + recordColumns + `
		FROM notifications
		WHERE request_id = $1;
    `

	return r.scanOne(r.db.QueryRowContext(ctx, query, requestID))
}

// GetBulk retrieves records for the given ids. Missing ids are simply absent
// from the result; the caller reports them as not found.
func (r *Repository) GetBulk(ctx context.Context, ids []uuid.UUID) ([]model.StatusRecord, error) {
	query := `
		SELECT` + recordColumns + `
		FROM notifications
		WHERE id = ANY($1);
    `

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications in bulk: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// UpdateStatus applies a lifecycle transition as an idempotent upsert keyed
// by notification id. A transition to pending increments retry_count;
// re-applying the same terminal status is a no-op update.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, errText string) error {
	query := `
		UPDATE notifications
		SET status = $2,
		    error = NULLIF($3, ''),
		    retry_count = CASE WHEN $2 = 'pending' THEN retry_count + 1 ELSE retry_count END,
		    updated_at = now()
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id, status, errText)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// Delete removes a status record. Used to compensate an intake whose publish
// failed, so the client can safely retry the submission.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// ListByUser retrieves a user's notifications, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.StatusRecord, error) {
	query := `
		SELECT` + recordColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications by user: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// ListByStatus retrieves all notifications in the given lifecycle state,
// newest first.
func (r *Repository) ListByStatus(ctx context.Context, status model.Status) ([]model.StatusRecord, error) {
	query := `
		SELECT` + recordColumns + `
		FROM notifications
		WHERE status = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications by status: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// Stats aggregates record counts by status and channel.
func (r *Repository) Stats(ctx context.Context) (model.StatusStats, error) {
	query := `
		SELECT status, channel, COUNT(*)
		FROM notifications
		GROUP BY status, channel;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return model.StatusStats{}, fmt.Errorf("failed to get notification stats: %w", err)
	}
	defer rows.Close()

	var stats model.StatusStats
	for rows.Next() {
		var (
			status  model.Status
			channel model.Channel
			count   int
		)
		if err := rows.Scan(&status, &channel, &count); err != nil {
			return model.StatusStats{}, err
		}

		stats.Total += count

		switch status {
		case model.StatusPending:
			stats.Pending += count
		case model.StatusDelivered:
			stats.Delivered += count
		case model.StatusFailed:
			stats.Failed += count
		}

		switch channel {
		case model.ChannelEmail:
			stats.Email += count
		case model.ChannelPush:
			stats.Push += count
		}
	}

	return stats, rows.Err()
}

func (r *Repository) scanOne(row *sql.Row) (model.StatusRecord, error) {
	var rec model.StatusRecord
	err := row.Scan(
		&rec.NotificationID, &rec.UserID, &rec.Channel, &rec.Recipient,
		&rec.RequestID, &rec.TemplateCode, &rec.Status, &rec.RetryCount,
		&rec.Error, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.StatusRecord{}, ErrNotificationNotFound
		}

		return model.StatusRecord{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return rec, nil
}

func (r *Repository) scanAll(rows *sql.Rows) ([]model.StatusRecord, error) {
	var records []model.StatusRecord
	for rows.Next() {
		var rec model.StatusRecord
		if err := rows.Scan(
			&rec.NotificationID, &rec.UserID, &rec.Channel, &rec.Recipient,
			&rec.RequestID, &rec.TemplateCode, &rec.Status, &rec.RetryCount,
			&rec.Error, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}
