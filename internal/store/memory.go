// Package store keeps live game sessions in memory.
//
// Sessions are keyed by ID and evicted after an idle TTL; nothing survives a
// restart.
package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned for unknown or evicted IDs.
var ErrNotFound = errors.New("store: not found")

// Store persists values by ID.
type Store[T any] interface {
	// Save adds or replaces the value for id.
	Save(ctx context.Context, id string, v T) error

	// Get returns the value for id and marks it as used.
	Get(ctx context.Context, id string) (T, error)

	// Delete removes id, returning ErrNotFound if it was not present.
	Delete(ctx context.Context, id string) error
}

type entry[T any] struct {
	value    T
	lastUsed time.Time
}

// Memory is a map-backed Store with idle eviction.
type Memory[T any] struct {
	mu      sync.RWMutex
	items   map[string]*entry[T]
	now     func() time.Time
	onEvict func(id string, v T)
}

// MemoryOption configures a Memory store.
type MemoryOption[T any] func(*Memory[T])

// WithClock replaces time.Now, for tests.
func WithClock[T any](now func() time.Time) MemoryOption[T] {
	return func(m *Memory[T]) {
		m.now = now
	}
}

// WithEvictHook registers a callback run for every value removed by Delete
// or Sweep. It runs without the store lock held.
func WithEvictHook[T any](fn func(id string, v T)) MemoryOption[T] {
	return func(m *Memory[T]) {
		m.onEvict = fn
	}
}

// NewMemory creates an empty store.
func NewMemory[T any](opts ...MemoryOption[T]) *Memory[T] {
	m := &Memory[T]{
		items: make(map[string]*entry[T]),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save implements Store.
func (m *Memory[T]) Save(ctx context.Context, id string, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = &entry[T]{value: v, lastUsed: m.now()}
	return nil
}

// Get implements Store.
func (m *Memory[T]) Get(ctx context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	e.lastUsed = m.now()
	return e.value, nil
}

// Delete implements Store.
func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	e, ok := m.items[id]
	delete(m.items, id)
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	m.evicted(id, e.value)
	return nil
}

// Len returns the number of stored values.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Sweep removes values idle for longer than ttl and returns their IDs.
func (m *Memory[T]) Sweep(ttl time.Duration) []string {
	cutoff := m.now().Add(-ttl)

	m.mu.Lock()
	removed := make(map[string]T)
	for id, e := range m.items {
		if e.lastUsed.Before(cutoff) {
			removed[id] = e.value
			delete(m.items, id)
		}
	}
	m.mu.Unlock()

	ids := make([]string, 0, len(removed))
	for id, v := range removed {
		m.evicted(id, v)
		ids = append(ids, id)
	}
	return ids
}

// RunJanitor sweeps every interval until ctx is done.
func (m *Memory[T]) RunJanitor(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ttl)
		}
	}
}

func (m *Memory[T]) evicted(id string, v T) {
	if m.onEvict != nil {
		m.onEvict(id, v)
	}
}
