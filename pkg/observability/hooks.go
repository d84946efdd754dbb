// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about taxonomy construction, ancestral path queries and
// outcast searches.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The query hot path only ever pays for an interface call and a clock read
// when no backend is registered. The [metrics] subpackage provides a
// Prometheus backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    h := metrics.New(prometheus.DefaultRegisterer, "wordnet")
//	    observability.SetQueryHooks(h)
//	    // ... build the taxonomy and run queries
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	// ... run both traversals ...
//	observability.Query().OnQuery(len(vs), len(ws), time.Since(start), found)
//
// [metrics]: github.com/matzehuels/wordnet/pkg/observability/metrics
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Taxonomy Hooks
// =============================================================================

// TaxonomyHooks receives events from taxonomy construction.
type TaxonomyHooks interface {
	// OnBuild records a finished construction attempt. On failure the
	// counts reflect what was ingested before the error.
	OnBuild(synsets, edges, nouns int, duration time.Duration, err error)
}

// =============================================================================
// Query Hooks
// =============================================================================

// QueryHooks receives events from the ancestral path engine.
type QueryHooks interface {
	// OnQuery records one shortest ancestral path computation. sources and
	// targets are the sizes of the two vertex sets.
	OnQuery(sources, targets int, duration time.Duration, found bool)
}

// =============================================================================
// Outcast Hooks
// =============================================================================

// OutcastHooks receives events from outcast searches.
type OutcastHooks interface {
	// OnOutcast records one outcast search over the given number of nouns.
	OnOutcast(nouns int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTaxonomyHooks is a no-op implementation of TaxonomyHooks.
type NoopTaxonomyHooks struct{}

func (NoopTaxonomyHooks) OnBuild(int, int, int, time.Duration, error) {}

// NoopQueryHooks is a no-op implementation of QueryHooks.
type NoopQueryHooks struct{}

func (NoopQueryHooks) OnQuery(int, int, time.Duration, bool) {}

// NoopOutcastHooks is a no-op implementation of OutcastHooks.
type NoopOutcastHooks struct{}

func (NoopOutcastHooks) OnOutcast(int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	taxonomyHooks TaxonomyHooks = NoopTaxonomyHooks{}
	queryHooks    QueryHooks    = NoopQueryHooks{}
	outcastHooks  OutcastHooks  = NoopOutcastHooks{}
	hooksMu       sync.RWMutex
)

// SetTaxonomyHooks registers custom taxonomy hooks.
// This should be called once at application startup before any taxonomy is built.
func SetTaxonomyHooks(h TaxonomyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		taxonomyHooks = h
	}
}

// SetQueryHooks registers custom query hooks.
// This should be called once at application startup before any query runs.
func SetQueryHooks(h QueryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queryHooks = h
	}
}

// SetOutcastHooks registers custom outcast hooks.
// This should be called once at application startup before any outcast search.
func SetOutcastHooks(h OutcastHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outcastHooks = h
	}
}

// Taxonomy returns the registered taxonomy hooks.
func Taxonomy() TaxonomyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return taxonomyHooks
}

// Query returns the registered query hooks.
func Query() QueryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queryHooks
}

// Outcast returns the registered outcast hooks.
func Outcast() OutcastHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outcastHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	taxonomyHooks = NoopTaxonomyHooks{}
	queryHooks = NoopQueryHooks{}
	outcastHooks = NoopOutcastHooks{}
}
