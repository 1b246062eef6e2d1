// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about reindexing passes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the core
// packages free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetReindexHooks(&myReindexHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Reindex().OnReindexStart(ctx, "full", "validated", net.Len())
//	// ... relabel ...
//	observability.Reindex().OnReindexComplete(ctx, "full", "validated", len(touched), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Reindex Hooks
// =============================================================================

// ReindexHooks receives events from whole-structure reindexing passes.
type ReindexHooks interface {
	// OnReindexStart records the beginning of a pass. mode is "full" or
	// "separator"; policy is "trusted" or "validated".
	OnReindexStart(ctx context.Context, mode, policy string, conditionals int)

	// OnReindexComplete records the end of a pass, including the number of
	// conditionals whose keys changed. err is non-nil when validation
	// rejected the permutation; no conditional was modified in that case.
	OnReindexComplete(ctx context.Context, mode, policy string, touched int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopReindexHooks is a no-op implementation of ReindexHooks.
type NoopReindexHooks struct{}

func (NoopReindexHooks) OnReindexStart(context.Context, string, string, int) {}
func (NoopReindexHooks) OnReindexComplete(context.Context, string, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	reindexHooks ReindexHooks = NoopReindexHooks{}
	hooksMu      sync.RWMutex
)

// SetReindexHooks registers custom reindex hooks.
// This should be called once at application startup before any reindexing.
func SetReindexHooks(h ReindexHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reindexHooks = h
	}
}

// Reindex returns the registered reindex hooks.
func Reindex() ReindexHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reindexHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reindexHooks = NoopReindexHooks{}
}
