package memory

import (
	"time"

	"gcn-navigator-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const catalogKey = "reference_catalog"

// ReferenceCache keeps the reference catalog in memory so the mention
// picker does not hit the database on every keystroke-driven fetch.
type ReferenceCache struct {
	cache *cache.Cache
}

func NewReferenceCache(ttl time.Duration) *ReferenceCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReferenceCache{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *ReferenceCache) Save(refs []*entity.Reference) {
	r.cache.Set(catalogKey, refs, cache.DefaultExpiration)
}

func (r *ReferenceCache) Get() ([]*entity.Reference, bool) {
	if x, found := r.cache.Get(catalogKey); found {
		return x.([]*entity.Reference), true
	}
	return nil, false
}

func (r *ReferenceCache) Invalidate() {
	r.cache.Delete(catalogKey)
}
