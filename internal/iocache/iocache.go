// Package iocache is for caching built engines across I/O calls.
package iocache

import (
	"context"
	"strings"
	"time"

	"github.com/huangsam/kwtrend/core"
	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/schema"
	gocache "github.com/patrickmn/go-cache"
)

// EngineCache defines the operations for caching engines by key.
// This allows the cache layer to be mocked for testing.
type EngineCache interface {
	Get(key string) (*core.Engine, bool)
	Set(key string, engine *core.Engine)
	Delete(key string)
	Flush()
}

// EngineStore implements EngineCache in memory with a TTL per entry.
type EngineStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

var _ EngineCache = &EngineStore{} // Compile-time check

// NewEngineStore creates a store whose entries expire after ttl.
// Expired entries are swept every 2*ttl.
func NewEngineStore(ttl time.Duration) *EngineStore {
	return &EngineStore{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Get retrieves an engine from the cache.
func (s *EngineStore) Get(key string) (*core.Engine, bool) {
	if val, found := s.cache.Get(key); found {
		return val.(*core.Engine), true
	}
	return nil, false
}

// Set stores an engine with the default TTL.
func (s *EngineStore) Set(key string, engine *core.Engine) {
	s.cache.Set(key, engine, s.ttl)
}

// Delete removes an engine from the cache.
func (s *EngineStore) Delete(key string) {
	s.cache.Delete(key)
}

// Flush removes all engines from the cache.
func (s *EngineStore) Flush() {
	s.cache.Flush()
}

// Len returns the number of cached engines, expired or not.
func (s *EngineStore) Len() int {
	return s.cache.ItemCount()
}

// Key identifies an engine by its source and the columns it was built with.
func Key(source string, cols schema.Columns) string {
	return strings.Join([]string{source, cols.Period, cols.Entity, cols.Metric, cols.Risk, cols.Trend}, "\x00")
}

// Fetch returns the cached engine for source, loading and building it on a miss.
// Stdin is never cached since it cannot be read twice.
func Fetch(ctx context.Context, cache EngineCache, loader contract.SourceLoader, cfg *contract.Config, source string) (*core.Engine, error) {
	if source == contract.StdinSource {
		return core.LoadEngine(ctx, cfg, loader, source)
	}
	key := Key(source, cfg.Columns)
	if engine, ok := cache.Get(key); ok {
		return engine, nil
	}
	engine, err := core.LoadEngine(ctx, cfg, loader, source)
	if err != nil {
		return nil, err
	}
	cache.Set(key, engine)
	return engine, nil
}
