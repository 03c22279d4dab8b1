// Package cache implements attempt stores used for rate limiting.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/finance-tracker/password-feedback/internal/application/adapter"
)

// attemptEntry tracks the attempts of a single key.
type attemptEntry struct {
	attempts  int64
	resetTime time.Time
}

// MemoryAttemptStore keeps attempt counters in process memory.
type MemoryAttemptStore struct {
	mu      sync.Mutex
	entries map[string]*attemptEntry
	now     func() time.Time
}

var _ adapter.AttemptStore = (*MemoryAttemptStore)(nil)

// NewMemoryAttemptStore creates an empty in-memory attempt store.
func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{
		entries: make(map[string]*attemptEntry),
		now:     time.Now,
	}
}

// Increment records an attempt for key.
func (s *MemoryAttemptStore) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &attemptEntry{
			attempts:  1,
			resetTime: now.Add(window),
		}
		return 1, nil
	}

	entry.attempts++
	return entry.attempts, nil
}

// Cleanup removes expired entries and returns how many were dropped.
func (s *MemoryAttemptStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// StartCleanup runs Cleanup every interval until the returned stop function is called.
// Stop waits for the cleanup goroutine to exit and is safe to call more than once.
func (s *MemoryAttemptStore) StartCleanup(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(exited)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := s.Cleanup(); removed > 0 {
					slog.Debug("Expired rate limit entries removed",
						"removed", removed,
						"remaining", s.Len(),
					)
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}
}

// Len returns the number of tracked keys.
func (s *MemoryAttemptStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
