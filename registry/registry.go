// Package registry is the optional host-facing seam: it assigns opaque
// int32 IDs to already-built *strategy.Strategy instances so a caller
// outside the module (an FFI boundary, a long-lived daemon) can address
// one without holding a Go reference to it. The registry is data, not
// algorithm: it owns no indicator logic and makes no trading decisions
// itself.
package registry

import (
	"sync"

	"barstream/strategy"
	"barstream/timeseries"
)

// Registry maps int32 IDs to strategy instances, guarded by a
// reader/writer lock: readers dominate on Next, writers only take the
// lock for Register/Unregister.
type Registry struct {
	mu    sync.RWMutex
	items map[int32]*strategy.Strategy
	next  int32
}

// New returns an empty registry ready for use.
func New() *Registry {
	return &Registry{items: make(map[int32]*strategy.Strategy)}
}

// Register assigns a fresh ID to strat and returns it. IDs are handed
// out monotonically and never reused within a registry's lifetime, even
// across Unregister calls.
func (r *Registry) Register(strat *strategy.Strategy) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	id := r.next
	r.items[id] = strat
	return id
}

// Unregister drops id from the table. Unregistering an unknown ID is a
// no-op, not an error.
func (r *Registry) Unregister(id int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
}

// Next evaluates bar against the strategy registered under id. An
// unknown ID returns the sentinel Idle action rather than raising.
func (r *Registry) Next(id int32, bar timeseries.OHLCV) strategy.TradeAction {
	r.mu.RLock()
	strat, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return strategy.TradeAction{Kind: strategy.Idle}
	}
	return strat.Next(bar)
}

// Parameters reports the lookback budget of the strategy registered
// under id, and whether id is known.
func (r *Registry) Parameters(id int32) (lookback int, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	strat, ok := r.items[id]
	if !ok {
		return 0, false
	}
	return strat.Lookback(), true
}

// Len reports how many strategies are currently registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
