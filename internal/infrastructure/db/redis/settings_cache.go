package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
)

const (
	settingsCacheKey = "settings:site"
	settingsCacheTTL = 5 * time.Minute
)

// CachedSettingsRepository decorates a SettingsRepository with a Redis
// read-through cache. The settings document is read on every public page load,
// so cache failures degrade to the underlying store rather than erroring.
type CachedSettingsRepository struct {
	inner  ports.SettingsRepository
	client *redis.Client
	log    zerolog.Logger
}

func NewCachedSettingsRepository(inner ports.SettingsRepository, client *redis.Client, log zerolog.Logger) *CachedSettingsRepository {
	return &CachedSettingsRepository{inner: inner, client: client, log: log}
}

func (r *CachedSettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	raw, err := r.client.Get(ctx, settingsCacheKey).Bytes()
	if err == nil {
		var s domain.SiteSettings
		if err := json.Unmarshal(raw, &s); err == nil {
			return &s, nil
		}
		// Corrupt cache entry; fall through to the store and rewrite it.
		r.client.Del(ctx, settingsCacheKey)
	} else if err != redis.Nil {
		r.log.Debug().Err(err).Msg("settings cache read failed")
	}

	settings, err := r.inner.Get(ctx)
	if err != nil {
		return nil, err
	}

	r.fill(ctx, settings)
	return settings, nil
}

// Upsert writes through to the store and refreshes the cache so admin edits
// are visible on the next public read.
func (r *CachedSettingsRepository) Upsert(ctx context.Context, s *domain.SiteSettings) error {
	if err := r.inner.Upsert(ctx, s); err != nil {
		return err
	}
	r.fill(ctx, s)
	return nil
}

func (r *CachedSettingsRepository) fill(ctx context.Context, s *domain.SiteSettings) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, settingsCacheKey, raw, settingsCacheTTL).Err(); err != nil {
		r.log.Debug().Err(err).Msg("settings cache write failed")
	}
}
