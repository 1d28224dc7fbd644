package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/radityabs/rutevis/internal/pkg/database"
	"github.com/radityabs/rutevis/internal/pkg/models"
)

func newCacheRepo(t *testing.T) (*PlannerRepo, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cfg := &models.Config{
		Mapbox: models.MapboxConfig{Profile: "driving", CacheTTL: 3600},
	}

	return NewPlannerRepo(cfg, nil, database.NewRedisClientWith(client)), mr
}

func TestDirectionsCache_RoundTrip(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	result := &models.DirectionsResult{
		Geometry:        [][]float64{{106.80, -6.17}, {106.82, -6.20}},
		DistanceMeters:  12500,
		DurationSeconds: 1800,
	}

	key := "directions:driving:qqguyuyu,qqguyvge"
	assert.NoError(t, repo.CacheDirections(ctx, key, result))

	cached, err := repo.GetCachedDirections(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, result, cached)
}

func TestDirectionsCache_MissReturnsNil(t *testing.T) {
	repo, _ := newCacheRepo(t)

	cached, err := repo.GetCachedDirections(context.Background(), "directions:driving:missing")

	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestDirectionsCache_EntriesExpire(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()

	key := "directions:driving:qqguyuyu"
	assert.NoError(t, repo.CacheDirections(ctx, key, &models.DirectionsResult{DistanceMeters: 100}))

	mr.FastForward(3601 * time.Second)

	cached, err := repo.GetCachedDirections(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, cached)
}
