package memory

import (
	"time"

	"landivo-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const settingsKey = "app_settings"

// SettingsCache keeps the settings row in process memory so the hot
// paths (offer alerts, campaign sends) skip the database.
type SettingsCache struct {
	cache *cache.Cache
}

func NewSettingsCache() *SettingsCache {
	// Settings change rarely; a 5 minute TTL bounds staleness after an
	// out-of-band DB edit. Writes through Save invalidate immediately.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &SettingsCache{
		cache: c,
	}
}

func (r *SettingsCache) Get() (*entity.Settings, bool) {
	if x, found := r.cache.Get(settingsKey); found {
		return x.(*entity.Settings), true
	}
	return nil, false
}

func (r *SettingsCache) Set(settings *entity.Settings) {
	r.cache.Set(settingsKey, settings, cache.DefaultExpiration)
}

func (r *SettingsCache) Invalidate() {
	r.cache.Delete(settingsKey)
}
