package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

// GetCachedDirections retrieves cached road geometry by cache key.
// A cache miss returns (nil, nil).
func (r *PlannerRepo) GetCachedDirections(ctx context.Context, key string) (*models.DirectionsResult, error) {
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directions cache: %w", err)
	}

	var result models.DirectionsResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached directions: %w", err)
	}

	return &result, nil
}

// CacheDirections stores road geometry under the given cache key with the
// configured TTL
func (r *PlannerRepo) CacheDirections(ctx context.Context, key string, result *models.DirectionsResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode directions for cache: %w", err)
	}

	ttl := time.Duration(r.cfg.Mapbox.CacheTTL) * time.Second
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to write directions cache: %w", err)
	}

	return nil
}
