package cache

import (
	"context"
	"sync"
	"time"

	"vibecheck-backend/internal/models"
)

type entry struct {
	quiz       models.DailyQuiz
	insertedAt time.Time
}

// MemoryCache is the process-wide default when Redis is not configured.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry

	now func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// GetOrCompute returns the cached value when present and fresh; otherwise it
// runs compute and stores the result. Compute runs outside the lock.
func (c *MemoryCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration,
	compute func(context.Context) (models.DailyQuiz, error)) (models.DailyQuiz, error) {

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.insertedAt) < ttl {
		c.mu.Unlock()
		return e.quiz, nil
	}
	c.mu.Unlock()

	quiz, err := compute(ctx)
	if err != nil {
		return models.DailyQuiz{}, err
	}

	c.mu.Lock()
	c.entries[key] = entry{quiz: quiz, insertedAt: c.now()}
	c.mu.Unlock()
	return quiz, nil
}
