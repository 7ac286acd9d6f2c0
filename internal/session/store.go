// Package session keeps values scoped to a browsing session. Entries expire
// after a period without access, the way session storage ends with the session.
package session

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Store is a TTL-bounded in-memory cache, safe for concurrent use. Reading an
// entry extends its lifetime.
type Store[K comparable, V any] struct {
	cache *ttlcache.Cache[K, V]
}

// New returns a store whose entries expire ttl after their last access.
// A zero ttl never expires entries.
func New[K comparable, V any](ttl time.Duration) *Store[K, V] {
	return &Store[K, V]{
		cache: ttlcache.New[K, V](ttlcache.WithTTL[K, V](ttl)),
	}
}

func (s *Store[K, V]) Get(key K) (V, bool) {
	item := s.cache.Get(key)
	if item == nil {
		var zero V

		return zero, false
	}

	return item.Value(), true
}

func (s *Store[K, V]) Set(key K, value V) {
	s.cache.Set(key, value, ttlcache.DefaultTTL)
}

func (s *Store[K, V]) Delete(key K) {
	s.cache.Delete(key)
}

// DeleteExpired drops every expired entry.
func (s *Store[K, V]) DeleteExpired() {
	s.cache.DeleteExpired()
}

func (s *Store[K, V]) Len() int {
	return s.cache.Len()
}
