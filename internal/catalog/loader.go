package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/pkg/cache"
)

// CacheKey is where the serialized catalog lives in Redis.
var CacheKey = cache.Key("catalog", "all")

// Cache is the shared cache backing the snapshot across instances.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Observer receives load outcomes.
type Observer interface {
	ObserveCatalogLoad(source string, size int, err error)
}

// Loader serves the catalog from a process-local snapshot, then the shared
// cache, then the source. The snapshot is replaced wholesale so readers never
// see a partially loaded catalog.
type Loader struct {
	source   Source
	cache    Cache
	observer Observer
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.RWMutex
	items    []models.Scholarship
	loadedAt time.Time

	loadMu sync.Mutex
}

// NewLoader constructs a Loader. cache and observer may be nil.
func NewLoader(source Source, cache Cache, observer Observer, ttl time.Duration, logger *zap.Logger) *Loader {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, cache: cache, observer: observer, ttl: ttl, logger: logger, now: time.Now}
}

// Scholarships returns the current catalog. The returned slice is shared and
// must not be mutated; callers copy records before overlaying user state.
func (l *Loader) Scholarships(ctx context.Context) ([]models.Scholarship, error) {
	if items, ok := l.snapshot(); ok {
		return items, nil
	}

	l.loadMu.Lock()
	defer l.loadMu.Unlock()
	if items, ok := l.snapshot(); ok {
		return items, nil
	}

	if l.cache != nil {
		var cached []models.Scholarship
		hit, err := l.cache.Get(ctx, CacheKey, &cached)
		if err == nil && hit {
			l.store(cached)
			return cached, nil
		}
	}
	return l.loadFromSource(ctx)
}

// Refresh reloads from the source regardless of snapshot age.
func (l *Loader) Refresh(ctx context.Context) (int, error) {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()
	items, err := l.loadFromSource(ctx)
	return len(items), err
}

// Invalidate expires the local snapshot so the next read goes to the shared
// cache or source. The expired items remain the stale fallback.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.loadedAt = time.Time{}
	l.mu.Unlock()
}

// LoadedAt reports when the current snapshot was taken.
func (l *Loader) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadedAt
}

func (l *Loader) loadFromSource(ctx context.Context) ([]models.Scholarship, error) {
	items, err := l.source.Load(ctx)
	if l.observer != nil {
		l.observer.ObserveCatalogLoad(l.source.Name(), len(items), err)
	}
	if err != nil {
		if stale, ok := l.stale(); ok {
			l.logger.Warn("catalog load failed, serving stale snapshot", zap.String("source", l.source.Name()), zap.Error(err))
			return stale, nil
		}
		return nil, err
	}
	if items == nil {
		items = []models.Scholarship{}
	}

	l.store(items)
	if l.cache != nil {
		_ = l.cache.Set(ctx, CacheKey, items, l.ttl)
	}
	l.logger.Info("catalog loaded", zap.String("source", l.source.Name()), zap.Int("size", len(items)))
	return items, nil
}

func (l *Loader) snapshot() ([]models.Scholarship, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.items == nil || l.now().Sub(l.loadedAt) >= l.ttl {
		return nil, false
	}
	return l.items, true
}

func (l *Loader) stale() ([]models.Scholarship, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items, l.items != nil
}

func (l *Loader) store(items []models.Scholarship) {
	l.mu.Lock()
	l.items = items
	l.loadedAt = l.now()
	l.mu.Unlock()
}
