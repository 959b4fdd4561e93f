package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/catalog"
	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
)

type fakeLister struct {
	classes   []model.FacetValue
	platforms []model.FacetValue
	err       error
}

func (f *fakeLister) ListJobClasses(ctx context.Context) ([]model.FacetValue, error) {
	return f.classes, f.err
}

func (f *fakeLister) ListSourcePlatforms(ctx context.Context) ([]model.FacetValue, error) {
	return f.platforms, f.err
}

// deadRedis returns a client pointing at a closed port. Cache reads and
// writes fail fast; the catalog must degrade to serving straight from the
// store.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCatalog_ServesFromStoreWhenCacheIsDown(t *testing.T) {
	lister := &fakeLister{
		classes:   []model.FacetValue{{ID: 1, Name: "Information Technology"}},
		platforms: []model.FacetValue{{ID: 1, Name: "jobsdb"}},
	}
	cat := catalog.New(lister, deadRedis(), time.Hour)

	classes, err := cat.JobClasses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lister.classes, classes)

	platforms, err := cat.SourcePlatforms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lister.platforms, platforms)
}

func TestCatalog_PropagatesStoreErrors(t *testing.T) {
	lister := &fakeLister{err: errors.New("db down")}
	cat := catalog.New(lister, deadRedis(), time.Hour)

	_, err := cat.JobClasses(context.Background())
	assert.Error(t, err)
}

func TestCatalog_RefreshFailsWhenCacheUnreachable(t *testing.T) {
	lister := &fakeLister{
		classes:   []model.FacetValue{{ID: 1, Name: "Information Technology"}},
		platforms: []model.FacetValue{{ID: 1, Name: "jobsdb"}},
	}
	cat := catalog.New(lister, deadRedis(), time.Hour)

	// Refresh exists to warm the cache; with no cache to warm it reports
	// the failure instead of silently doing nothing.
	assert.Error(t, cat.Refresh(context.Background()))
}
