// Package cache holds the daily quiz cache: an explicit get-or-compute
// abstraction with a time-to-live, checked on read. The cache is advisory —
// two callers racing on the same key may both compute, costing one redundant
// model call, never a correctness failure.
package cache

import (
	"context"
	"time"

	"vibecheck-backend/internal/models"
)

type Cache interface {
	GetOrCompute(ctx context.Context, key string, ttl time.Duration,
		compute func(context.Context) (models.DailyQuiz, error)) (models.DailyQuiz, error)
}
