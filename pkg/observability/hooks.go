// Package observability provides hooks for metrics and tracing.
//
// Libraries emit events through small hook interfaces with no-op defaults;
// the binary registers a real implementation at startup. This keeps
// pkg/sorting and pkg/pipeline free of any metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	metrics := observability.NewPrometheusHooks(prometheus.DefaultRegisterer)
//	observability.SetSortHooks(metrics)
//	observability.SetCacheHooks(metrics)
//	observability.SetHTTPHooks(metrics)
//
// Libraries call hooks to emit events:
//
//	observability.Sort().OnSortStart(ctx, algorithm, disks)
//	// ... sort ...
//	observability.Sort().OnSortComplete(ctx, algorithm, swaps, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Sort Hooks
// =============================================================================

// SortHooks receives events from the sort pipeline.
type SortHooks interface {
	// OnSortStart records the start of a sort over a row of totalDisks disks.
	OnSortStart(ctx context.Context, algorithm string, totalDisks int)

	// OnSortComplete records the end of a sort. swaps is zero when err is set.
	OnSortComplete(ctx context.Context, algorithm string, swaps int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache lookups made by the pipeline.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records a served request.
	OnRequest(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSortHooks is a no-op implementation of SortHooks.
type NoopSortHooks struct{}

func (NoopSortHooks) OnSortStart(context.Context, string, int)                          {}
func (NoopSortHooks) OnSortComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sortHooks  SortHooks  = NoopSortHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetSortHooks registers custom sort hooks. A nil h is ignored.
func SetSortHooks(h SortHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sortHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Sort returns the registered sort hooks.
func Sort() SortHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sortHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sortHooks = NoopSortHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
