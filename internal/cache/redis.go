package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"unityeats/internal/models"
	"unityeats/internal/stats"

	"github.com/redis/go-redis/v9"
)

const (
	directoryKey = "directory:verified"
	statsKey     = "stats:donations"

	directoryTTL = 5 * time.Minute
	statsTTL     = time.Minute
)

// RedisClient caches the two hot read models: the verified NGO directory and
// the global donation counters. All methods are safe on a nil receiver so the
// API runs without redis configured.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient(redisURL string) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client, ctx: ctx}, nil
}

func (r *RedisClient) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisClient) GetDirectory() ([]models.NGO, bool, error) {
	if r == nil {
		return nil, false, nil
	}

	data, err := r.client.Get(r.ctx, directoryKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read directory cache: %w", err)
	}

	var ngos []models.NGO
	if err := json.Unmarshal([]byte(data), &ngos); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal directory cache: %w", err)
	}
	return ngos, true, nil
}

func (r *RedisClient) StoreDirectory(ngos []models.NGO) error {
	if r == nil {
		return nil
	}

	data, err := json.Marshal(ngos)
	if err != nil {
		return fmt.Errorf("failed to marshal directory: %w", err)
	}
	return r.client.Set(r.ctx, directoryKey, data, directoryTTL).Err()
}

func (r *RedisClient) InvalidateDirectory() error {
	if r == nil {
		return nil
	}
	return r.client.Del(r.ctx, directoryKey).Err()
}

func (r *RedisClient) GetStats() (stats.Summary, bool, error) {
	if r == nil {
		return stats.Summary{}, false, nil
	}

	data, err := r.client.Get(r.ctx, statsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return stats.Summary{}, false, nil
		}
		return stats.Summary{}, false, fmt.Errorf("failed to read stats cache: %w", err)
	}

	var summary stats.Summary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return stats.Summary{}, false, fmt.Errorf("failed to unmarshal stats cache: %w", err)
	}
	return summary, true, nil
}

func (r *RedisClient) StoreStats(summary stats.Summary) error {
	if r == nil {
		return nil
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	return r.client.Set(r.ctx, statsKey, data, statsTTL).Err()
}

func (r *RedisClient) InvalidateStats() error {
	if r == nil {
		return nil
	}
	return r.client.Del(r.ctx, statsKey).Err()
}
