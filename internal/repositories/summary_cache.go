package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/monetrix/monetrix-server/internal/logger"
	"github.com/monetrix/monetrix-server/internal/models"
	"github.com/redis/go-redis/v9"
)

// SummaryCacheRepository caches computed dashboard summaries in Redis so
// repeated page loads inside the TTL skip the aggregation queries.
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(userID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("summary:%s:%s", userID, month.Format("2006-01"))
}

// Get returns the cached summary for a user and month, or nil on a miss.
func (r *SummaryCacheRepository) Get(ctx context.Context, userID uuid.UUID, month time.Time) (*models.MonthlySummary, error) {
	key := summaryKey(userID, month)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Warnw("summary cache get failed", "key", key, "error", err)
		return nil, err
	}

	var summary models.MonthlySummary
	if err := json.Unmarshal(val, &summary); err != nil {
		logger.Log.Warnw("summary cache holds unparsable value", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("summary cache hit", "key", key)
	return &summary, nil
}

// Set stores a summary with the configured TTL.
func (r *SummaryCacheRepository) Set(ctx context.Context, userID uuid.UUID, month time.Time, summary *models.MonthlySummary) error {
	key := summaryKey(userID, month)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("summary cache set", "key", key, "error", err)
	return err
}

// Invalidate drops every cached summary for the user. Called after ledger
// mutations so stale KPIs never outlive a write.
func (r *SummaryCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("summary:%s:*", userID)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warnw("summary cache scan failed", "pattern", pattern, "error", err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()
	logger.Log.Debugw("summary cache invalidate", "pattern", pattern, "keys", len(keys), "error", err)
	return err
}
