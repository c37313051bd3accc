package service

import (
	"sync"
	"time"
)

// Registry holds live workflow and flow instances by ID. Instances are
// transient: never persisted, and idle ones are evicted after ttl so an
// abandoned browser tab cannot pin one forever. Each lookup refreshes
// the instance's idle clock.
type Registry[T any] struct {
	mu      sync.Mutex
	items   map[string]*registryItem[T]
	ttl     time.Duration
	onEvict func(T)
	done    chan struct{}
	once    sync.Once
}

type registryItem[T any] struct {
	value    T
	lastSeen time.Time
}

// NewRegistry creates a registry with the given idle TTL. onEvict, if
// non-nil, runs for every instance removed by expiry or Remove.
func NewRegistry[T any](ttl time.Duration, onEvict func(T)) *Registry[T] {
	r := &Registry[T]{
		items:   make(map[string]*registryItem[T]),
		ttl:     ttl,
		onEvict: onEvict,
		done:    make(chan struct{}),
	}
	go r.sweep()
	return r
}

// Put registers an instance under id.
func (r *Registry[T]) Put(id string, value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id] = &registryItem[T]{value: value, lastSeen: time.Now()}
}

// Get returns the instance registered under id and refreshes its idle
// clock.
func (r *Registry[T]) Get(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	item.lastSeen = time.Now()
	return item.value, true
}

// Remove deletes the instance under id and runs the eviction hook.
func (r *Registry[T]) Remove(id string) bool {
	r.mu.Lock()
	item, ok := r.items[id]
	if ok {
		delete(r.items, id)
	}
	r.mu.Unlock()

	if ok && r.onEvict != nil {
		r.onEvict(item.value)
	}
	return ok
}

// Len returns the number of live instances.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Close stops the sweeper and evicts every remaining instance.
func (r *Registry[T]) Close() {
	r.once.Do(func() { close(r.done) })

	r.mu.Lock()
	evicted := make([]T, 0, len(r.items))
	for id, item := range r.items {
		evicted = append(evicted, item.value)
		delete(r.items, id)
	}
	r.mu.Unlock()

	if r.onEvict != nil {
		for _, value := range evicted {
			r.onEvict(value)
		}
	}
}

func (r *Registry[T]) sweep() {
	interval := r.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case now := <-ticker.C:
			r.evictIdle(now)
		}
	}
}

func (r *Registry[T]) evictIdle(now time.Time) {
	r.mu.Lock()
	var evicted []T
	for id, item := range r.items {
		if now.Sub(item.lastSeen) > r.ttl {
			evicted = append(evicted, item.value)
			delete(r.items, id)
		}
	}
	r.mu.Unlock()

	if r.onEvict != nil {
		for _, value := range evicted {
			r.onEvict(value)
		}
	}
}
