package internshipinfra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/go-redis/redis/v8"
)

// CatalogCacheKey holds the JSON-encoded full catalog
const CatalogCacheKey = "internmatch:internships:catalog"

// CachedRepository decorates an internship.Repository with a Redis copy of the full catalog.
// Redis failures are logged and the call falls through to the underlying repository.
type CachedRepository struct {
	internship.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedRepository wraps repo with a Redis catalog cache
func NewCachedRepository(repo internship.Repository, client *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		client:     client,
		ttl:        ttl,
	}
}

// List serves the catalog from Redis when present
func (r *CachedRepository) List(ctx context.Context) ([]internship.Internship, error) {
	data, err := r.client.Get(ctx, CatalogCacheKey).Bytes()
	switch {
	case err == nil:
		var items []internship.Internship
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		logx.Warnf("Discarding undecodable catalog cache entry: %v", err)
	case errors.Is(err, redis.Nil):
		// miss
	default:
		logx.Warnf("Catalog cache read failed, using store: %v", err)
	}

	items, err := r.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		logx.Warnf("Failed to encode catalog for cache: %v", err)
		return items, nil
	}
	if err := r.client.Set(ctx, CatalogCacheKey, payload, r.ttl).Err(); err != nil {
		logx.Warnf("Catalog cache write failed: %v", err)
	}

	return items, nil
}

// Create stores the internship and invalidates the cached catalog
func (r *CachedRepository) Create(ctx context.Context, entity *internship.Internship) error {
	if err := r.Repository.Create(ctx, entity); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Update replaces the internship and invalidates the cached catalog
func (r *CachedRepository) Update(ctx context.Context, id kernel.InternshipID, entity *internship.Internship) error {
	if err := r.Repository.Update(ctx, id, entity); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete removes the internship and invalidates the cached catalog
func (r *CachedRepository) Delete(ctx context.Context, id kernel.InternshipID) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, CatalogCacheKey).Err(); err != nil {
		logx.Warnf("Catalog cache invalidation failed: %v", err)
	}
}

// NewRedisClient connects to Redis and pings it once
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
