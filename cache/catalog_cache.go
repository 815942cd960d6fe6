package catalog_cache

import (
	"sync"
	"time"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

const TTL = 5 * time.Minute

// ── Category list cache ──────────────────────────────────────────────────────
// Stores categories with per-category product counts.
// Storefront GetCategories reads from this.

type categoryEntry struct {
	categories    []models.Category
	productCounts map[string]int
	fetchedAt     time.Time
}

var (
	catMu    sync.RWMutex
	catCache *categoryEntry
)

func GetCategories() (categories []models.Category, productCounts map[string]int, ok bool) {
	catMu.RLock()
	defer catMu.RUnlock()
	if catCache != nil && time.Since(catCache.fetchedAt) < TTL {
		return catCache.categories, catCache.productCounts, true
	}
	return nil, nil, false
}

func SetCategories(categories []models.Category, productCounts map[string]int) {
	catMu.Lock()
	defer catMu.Unlock()
	catCache = &categoryEntry{
		categories:    categories,
		productCounts: productCounts,
		fetchedAt:     time.Now(),
	}
}

// ── Storefront settings cache ────────────────────────────────────────────────

type settingsEntry struct {
	data      []models.StorefrontSetting
	fetchedAt time.Time
}

var (
	setMu    sync.RWMutex
	setCache *settingsEntry
)

func GetSettings() ([]models.StorefrontSetting, bool) {
	setMu.RLock()
	defer setMu.RUnlock()
	if setCache != nil && time.Since(setCache.fetchedAt) < TTL {
		return setCache.data, true
	}
	return nil, false
}

func SetSettings(data []models.StorefrontSetting) {
	setMu.Lock()
	defer setMu.Unlock()
	setCache = &settingsEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any catalog or settings write) ────────────

func Invalidate() {
	catMu.Lock()
	catCache = nil
	catMu.Unlock()

	setMu.Lock()
	setCache = nil
	setMu.Unlock()
}
