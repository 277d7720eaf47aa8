package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"vibecheck-backend/internal/models"
)

// RedisCache shares the daily quiz across processes. Redis trouble degrades
// to computing the value; it never fails the request.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration,
	compute func(context.Context) (models.DailyQuiz, error)) (models.DailyQuiz, error) {

	redisKey := fmt.Sprintf("daily_quiz:%s", key)

	data, err := c.client.Get(ctx, redisKey).Bytes()
	if err == nil {
		var quiz models.DailyQuiz
		if json.Unmarshal(data, &quiz) == nil {
			return quiz, nil
		}
	} else if err != redis.Nil {
		log.Printf("WARNING: redis cache read failed: %v", err)
	}

	quiz, err := compute(ctx)
	if err != nil {
		return models.DailyQuiz{}, err
	}

	if data, err := json.Marshal(quiz); err == nil {
		if err := c.client.Set(ctx, redisKey, data, ttl).Err(); err != nil {
			log.Printf("WARNING: redis cache write failed: %v", err)
		}
	}
	return quiz, nil
}
