package filter_cache

import (
	"sync"
	"time"

	"github.com/RoboMarket/robomarket-backend/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The sidebar metadata (brands, categories, price range) is recomputed from
// three aggregate queries; every storefront visitor requests it, so it is
// served from process memory for a short window.

type metadataEntry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metadataMu    sync.RWMutex
	metadataCache *metadataEntry
)

func Get() (*models.FilterMetadata, bool) {
	metadataMu.RLock()
	defer metadataMu.RUnlock()
	if metadataCache != nil && time.Since(metadataCache.fetchedAt) < TTL {
		return metadataCache.data, true
	}
	return nil, false
}

func Set(data *models.FilterMetadata) {
	metadataMu.Lock()
	defer metadataMu.Unlock()
	metadataCache = &metadataEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call when the projection is refreshed out of band) ───────────

func Invalidate() {
	metadataMu.Lock()
	metadataCache = nil
	metadataMu.Unlock()
}
