package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Metric is a point-in-time read of one counter
type Metric struct {
	Name  string
	Value int64
}

// Registry holds named counters for a run
// Registration uses mutex; cached pointer access is lock-free
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
}

func NewRegistry() *Registry {
	return &Registry{counters: make(map[string]*atomic.Int64)}
}

// Counter returns the counter for name, creating it if absent
// Callers cache the pointer and write to it directly
func (r *Registry) Counter(name string) *atomic.Int64 {
	r.mu.RLock()
	if c, ok := r.counters[name]; ok {
		r.mu.RUnlock()
		return c
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if c, ok := r.counters[name]; ok {
		return c
	}
	c := new(atomic.Int64)
	r.counters[name] = c
	return c
}

// Snapshot returns all counters sorted by name
func (r *Registry) Snapshot() []Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metric, 0, len(r.counters))
	for name, c := range r.counters {
		out = append(out, Metric{Name: name, Value: c.Load()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
