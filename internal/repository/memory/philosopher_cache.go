package memory

import (
	"time"

	"stoic-companion-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const philosopherListKey = "philosophers:all"

// PhilosopherCache keeps the philosopher roster in memory. The roster only
// changes on reseed, so a generous TTL is fine.
type PhilosopherCache struct {
	cache *cache.Cache
}

func NewPhilosopherCache() *PhilosopherCache {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &PhilosopherCache{
		cache: c,
	}
}

func (r *PhilosopherCache) SaveAll(philosophers []*entity.Philosopher) {
	r.cache.Set(philosopherListKey, philosophers, cache.DefaultExpiration)
}

func (r *PhilosopherCache) GetAll() ([]*entity.Philosopher, bool) {
	if x, found := r.cache.Get(philosopherListKey); found {
		return x.([]*entity.Philosopher), true
	}
	return nil, false
}

func (r *PhilosopherCache) Invalidate() {
	r.cache.Delete(philosopherListKey)
}
