package internshipinfra

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An unreachable Redis must never break the catalog.
func TestCachedRepository_DegradesWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	repo := NewCachedRepository(NewMemoryInternshipRepository(), client, time.Minute)

	entity := &internship.Internship{ID: "a", Title: "A", Location: "X", Sector: "Y", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, entity))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Title)

	entity.Title = "B"
	require.NoError(t, repo.Update(ctx, "a", entity))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "B", got.Title)

	require.NoError(t, repo.Delete(ctx, "a"))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCachedRepository_PropagatesStoreErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	repo := NewCachedRepository(NewMemoryInternshipRepository(), client, time.Minute)

	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
}

type countingRepository struct {
	*MemoryInternshipRepository
	lists int
}

func (r *countingRepository) List(ctx context.Context) ([]internship.Internship, error) {
	r.lists++
	return r.MemoryInternshipRepository.List(ctx)
}

func newCachedFixture(t *testing.T) (*CachedRepository, *countingRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := &countingRepository{MemoryInternshipRepository: NewMemoryInternshipRepository()}
	require.NoError(t, store.Create(context.Background(), &internship.Internship{
		ID: "a", Title: "A", Location: "X", Sector: "Y", Requirements: []string{"go"}, CreatedAt: time.Now(),
	}))

	return NewCachedRepository(store, client, time.Minute), store, mr
}

func TestCachedRepository_ServesHitsFromRedis(t *testing.T) {
	ctx := context.Background()
	repo, store, mr := newCachedFixture(t)

	first, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.lists)
	assert.True(t, mr.Exists(CatalogCacheKey))
	assert.Equal(t, time.Minute, mr.TTL(CatalogCacheKey))

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.lists, "cache hit must not reach the store")
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Title, second[0].Title)
	assert.Equal(t, []string{"go"}, second[0].Requirements)
}

func TestCachedRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		write func(repo *CachedRepository) error
	}{
		{
			name: "create",
			write: func(repo *CachedRepository) error {
				return repo.Create(ctx, &internship.Internship{ID: "b", Title: "B", Location: "X", Sector: "Y", CreatedAt: time.Now()})
			},
		},
		{
			name: "update",
			write: func(repo *CachedRepository) error {
				return repo.Update(ctx, "a", &internship.Internship{ID: "a", Title: "A2", Location: "X", Sector: "Y"})
			},
		},
		{
			name: "delete",
			write: func(repo *CachedRepository) error {
				return repo.Delete(ctx, "a")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, store, mr := newCachedFixture(t)

			_, err := repo.List(ctx)
			require.NoError(t, err)
			require.True(t, mr.Exists(CatalogCacheKey))

			require.NoError(t, tt.write(repo))
			assert.False(t, mr.Exists(CatalogCacheKey))

			_, err = repo.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, store.lists)
		})
	}
}

func TestCachedRepository_FailedWriteKeepsCache(t *testing.T) {
	repo, _, mr := newCachedFixture(t)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Error(t, repo.Delete(context.Background(), "missing"))
	assert.True(t, mr.Exists(CatalogCacheKey))
}

func TestCachedRepository_DiscardsUndecodableEntry(t *testing.T) {
	repo, store, mr := newCachedFixture(t)
	require.NoError(t, mr.Set(CatalogCacheKey, "not json"))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, 1, store.lists)

	cached, err := mr.Get(CatalogCacheKey)
	require.NoError(t, err)
	assert.Contains(t, cached, `"title":"A"`)
}
