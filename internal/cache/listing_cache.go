// Package cache holds freshly fetched folder listings for a short TTL so
// that destination-picking and collision scans do not re-hit the API for
// every keystroke. Entries are invalidated whenever an operation touches
// the folder.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

func (e *entry[T]) expired() bool {
	return time.Now().After(e.expiresAt)
}

type KeyedCache[T any] struct {
	entries map[string]*entry[T]
	mu      sync.RWMutex
	ttl     time.Duration
}

func NewKeyedCache[T any](ttl time.Duration) *KeyedCache[T] {
	return &KeyedCache[T]{
		entries: make(map[string]*entry[T]),
		ttl:     ttl,
	}
}

func (c *KeyedCache[T]) Set(key string, value T) {
	c.SetWithTTL(key, value, c.ttl)
}

func (c *KeyedCache[T]) SetWithTTL(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry[T]{data: value, expiresAt: time.Now().Add(ttl)}
}

func (c *KeyedCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, exists := c.entries[key]
	if !exists {
		c.mu.RUnlock()
		return *new(T), false
	}
	expired := e.expired()
	c.mu.RUnlock()

	if !expired {
		return e.data, true
	}
	c.mu.Lock()
	if c.entries[key] == e {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	return *new(T), false
}

func (c *KeyedCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeletePrefix drops every entry whose key starts with prefix. Removing a
// folder must also forget any cached listing underneath it.
func (c *KeyedCache[T]) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
}

func (c *KeyedCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry[T])
}

// GC drops expired entries; callers decide when to run it.
func (c *KeyedCache[T]) GC() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if e.expired() {
			delete(c.entries, key)
		}
	}
}
