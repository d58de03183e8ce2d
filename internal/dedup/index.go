// Package dedup implements the request deduplication index: a Redis mapping
// from client request id to notification id with a bounded retention window.
// It only serves the intake hot path; the status store's unique request_id
// column remains the source of truth.
package dedup

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
)

const keyPrefix = "dedup:"

// Index answers "already processed" queries for client request ids.
type Index struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewIndex creates an index with the given retention window.
func NewIndex(rdb *redis.Client, ttl time.Duration) *Index {
	return &Index{rdb: rdb, ttl: ttl}
}

// Lookup returns the notification id previously recorded for the request id,
// or found=false when the id is unknown or its retention window has expired.
func (i *Index) Lookup(ctx context.Context, strategy retry.Strategy, requestID string) (uuid.UUID, bool, error) {
	val, err := i.rdb.GetWithRetry(ctx, strategy, keyPrefix+requestID)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return uuid.Nil, false, nil
		}

		return uuid.Nil, false, fmt.Errorf("failed to look up request id: %w", err)
	}

	id, err := uuid.Parse(val)
	if err != nil {
		// Stale or foreign value under the key; treat as a miss and let the
		// status store's unique constraint decide.
		return uuid.Nil, false, nil
	}

	return id, true, nil
}

// MarkProcessed records the request id with set-if-not-exists semantics so
// two racing intakes cannot both claim it. Called only after the status
// record is persisted and the queue publish succeeded.
func (i *Index) MarkProcessed(ctx context.Context, strategy retry.Strategy, requestID string, notificationID uuid.UUID) error {
	err := retry.Do(func() error {
		return i.rdb.SetNX(ctx, keyPrefix+requestID, notificationID.String(), i.ttl).Err()
	}, strategy)
	if err != nil {
		return fmt.Errorf("failed to mark request id processed: %w", err)
	}

	return nil
}
