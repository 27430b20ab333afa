package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

const (
	keyPlans     = "catalog:plans"
	keyCountries = "catalog:countries"
	catalogTTL   = 5 * time.Minute
)

// PlanCache is a read-through decorator over a PlanRepository. Catalog data
// is read often and written rarely, so listings are served from Redis when
// possible. Every write goes to the inner repository first and then drops
// the cached key, so a re-fetch after a successful write always observes it.
type PlanCache struct {
	inner  ports.PlanRepository
	client *redis.Client
	log    zerolog.Logger
}

func NewPlanCache(inner ports.PlanRepository, client *redis.Client, log zerolog.Logger) *PlanCache {
	return &PlanCache{inner: inner, client: client, log: log}
}

func (c *PlanCache) List(ctx context.Context) ([]domain.Plan, error) {
	if raw, err := c.client.Get(ctx, keyPlans).Bytes(); err == nil {
		var plans []domain.Plan
		if err := json.Unmarshal(raw, &plans); err == nil {
			return plans, nil
		}
		c.log.Warn().Msg("dropping undecodable plan cache entry")
		c.client.Del(ctx, keyPlans)
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("plan cache read failed, falling through")
	}

	plans, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, keyPlans, plans)
	return plans, nil
}

func (c *PlanCache) Insert(ctx context.Context, p domain.Plan) (domain.Plan, error) {
	created, err := c.inner.Insert(ctx, p)
	if err != nil {
		return domain.Plan{}, err
	}
	c.invalidate(ctx, keyPlans)
	return created, nil
}

func (c *PlanCache) Update(ctx context.Context, p domain.Plan) (domain.Plan, error) {
	updated, err := c.inner.Update(ctx, p)
	if err != nil {
		return domain.Plan{}, err
	}
	c.invalidate(ctx, keyPlans)
	return updated, nil
}

// CountryCache is the same read-through decorator for the country
// vocabulary.
type CountryCache struct {
	inner  ports.CountryRepository
	client *redis.Client
	log    zerolog.Logger
}

func NewCountryCache(inner ports.CountryRepository, client *redis.Client, log zerolog.Logger) *CountryCache {
	return &CountryCache{inner: inner, client: client, log: log}
}

func (c *CountryCache) List(ctx context.Context) ([]string, error) {
	if raw, err := c.client.Get(ctx, keyCountries).Bytes(); err == nil {
		var countries []string
		if err := json.Unmarshal(raw, &countries); err == nil {
			return countries, nil
		}
		c.client.Del(ctx, keyCountries)
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("country cache read failed, falling through")
	}

	countries, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	fillCache(ctx, c.client, c.log, keyCountries, countries)
	return countries, nil
}

func (c *CountryCache) Add(ctx context.Context, name string) error {
	if err := c.inner.Add(ctx, name); err != nil {
		return err
	}
	if err := c.client.Del(ctx, keyCountries).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", keyCountries).Msg("cache invalidation failed")
	}
	return nil
}

func (c *PlanCache) fill(ctx context.Context, key string, v any) {
	fillCache(ctx, c.client, c.log, key, v)
}

func (c *PlanCache) invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}

// fillCache is best effort: a failed write only costs the next read a trip
// to the backend.
func fillCache(ctx context.Context, client *redis.Client, log zerolog.Logger, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := client.Set(ctx, key, raw, catalogTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
