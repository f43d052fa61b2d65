package mem

import (
	"sync"
	"time"
)

// entry is one value with its expiry.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// ttlMap is a mutex-guarded map whose entries vanish after their deadline.
// Expired entries are dropped lazily on access and by Prune.
type ttlMap[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  func() time.Time
}

func newTTLMap[V any](now func() time.Time) *ttlMap[V] {
	if now == nil {
		now = time.Now
	}
	return &ttlMap[V]{data: make(map[string]entry[V]), now: now}
}

func (m *ttlMap[V]) set(key string, v V, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = entry[V]{value: v, expiresAt: expiresAt}
}

func (m *ttlMap[V]) take(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	e, ok := m.data[key]
	if !ok {
		return zero, false
	}
	delete(m.data, key)
	if m.now().After(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

func (m *ttlMap[V]) peek(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var zero V
	e, ok := m.data[key]
	if !ok || m.now().After(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

func (m *ttlMap[V]) prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for k, e := range m.data {
		if now.After(e.expiresAt) {
			delete(m.data, k)
			removed++
		}
	}
	return removed
}

type ResetTokenStore interface {
	Set(token string, userID int64, ttl time.Duration)

	// Consume returns the user id for token if not expired and removes the
	// token (single-use).
	Consume(token string) (int64, bool)
}

type ResetTokens struct {
	tokens *ttlMap[int64]
}

func NewResetTokens() *ResetTokens {
	return NewResetTokensWithClock(time.Now)
}

func NewResetTokensWithClock(now func() time.Time) *ResetTokens {
	return &ResetTokens{tokens: newTTLMap[int64](now)}
}

func (s *ResetTokens) Set(token string, userID int64, ttl time.Duration) {
	s.tokens.set(token, userID, s.tokens.now().Add(ttl))
}

func (s *ResetTokens) Consume(token string) (int64, bool) {
	return s.tokens.take(token)
}

func (s *ResetTokens) Prune() int {
	return s.tokens.prune()
}
