// Package catalog serves the facet dimensions (job classes, source
// platforms) used to populate search filters, caching them in Redis so the
// lookup tables are not hit on every request.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HawyHoWingYam/JOB-SCRAPER-sub000/internal/model"
)

const (
	keyJobClasses      = "catalog:job_classes"
	keySourcePlatforms = "catalog:source_platforms"
)

// Lister is the slice of the store the catalog needs.
type Lister interface {
	ListJobClasses(ctx context.Context) ([]model.FacetValue, error)
	ListSourcePlatforms(ctx context.Context) ([]model.FacetValue, error)
}

// Catalog is a cache-aside view over the facet lookup tables.
type Catalog struct {
	store Lister
	rdb   *redis.Client
	ttl   time.Duration
}

// New constructs a Catalog. Cached entries expire after ttl; the scheduler
// re-warms them before that on a healthy system.
func New(store Lister, rdb *redis.Client, ttl time.Duration) *Catalog {
	return &Catalog{store: store, rdb: rdb, ttl: ttl}
}

// JobClasses returns the job class facet values, cached.
func (c *Catalog) JobClasses(ctx context.Context) ([]model.FacetValue, error) {
	return c.cached(ctx, keyJobClasses, c.store.ListJobClasses)
}

// SourcePlatforms returns the source platform facet values, cached.
func (c *Catalog) SourcePlatforms(ctx context.Context) ([]model.FacetValue, error) {
	return c.cached(ctx, keySourcePlatforms, c.store.ListSourcePlatforms)
}

// Refresh re-reads both lookup tables and overwrites the cache. Used by the
// cron scheduler and at startup.
func (c *Catalog) Refresh(ctx context.Context) error {
	classes, err := c.store.ListJobClasses(ctx)
	if err != nil {
		return fmt.Errorf("refresh job classes: %w", err)
	}
	if err := c.put(ctx, keyJobClasses, classes); err != nil {
		return err
	}

	platforms, err := c.store.ListSourcePlatforms(ctx)
	if err != nil {
		return fmt.Errorf("refresh source platforms: %w", err)
	}
	return c.put(ctx, keySourcePlatforms, platforms)
}

// cached returns the key's cached value, falling back to load on a miss.
// A cache read failure is logged and treated as a miss; a cache write
// failure is non-fatal (the values were already fetched).
func (c *Catalog) cached(ctx context.Context, key string, load func(context.Context) ([]model.FacetValue, error)) ([]model.FacetValue, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var values []model.FacetValue
		if err := json.Unmarshal(raw, &values); err == nil {
			return values, nil
		}
		slog.Warn("catalog cache entry corrupt, reloading", "key", key)
	} else if err != redis.Nil {
		slog.Warn("catalog cache read failed", "key", key, "err", err)
	}

	values, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.put(ctx, key, values); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "err", err)
	}
	return values, nil
}

func (c *Catalog) put(ctx context.Context, key string, values []model.FacetValue) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache %s: %w", key, err)
	}
	return nil
}
