// Package warns provides the in-memory warning registry.
// Warnings live only for the lifetime of the process; there is no
// persistence and the registry resets on restart.
package warns

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// Store maps a user ID to its ordered list of warnings.
// All mutations serialize behind a single mutex, so an add or remove is
// atomic relative to every other handler touching the registry.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]models.Warn
	counter uint64
}

// NewStore creates an empty warning registry.
func NewStore() *Store {
	return &Store{
		entries: make(map[string][]models.Warn),
	}
}

// nextID allocates the next warning ID from the shared counter.
// Caller must hold s.mu.
func (s *Store) nextID() string {
	s.counter++
	return fmt.Sprintf("warn-%d", s.counter)
}

// Add appends a new warning for the user and returns the created record.
// An empty reason is replaced with the default sentinel. Add never fails.
func (s *Store) Add(userID, reason, moderator string) models.Warn {
	if reason == "" {
		reason = models.DefaultWarnReason
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	warn := models.Warn{
		ID:        s.nextID(),
		Reason:    reason,
		Moderator: moderator,
		Timestamp: time.Now().Unix(),
	}
	s.entries[userID] = append(s.entries[userID], warn)
	return warn
}

// List returns a copy of the user's warnings in insertion order.
// Unknown users yield an empty slice, never an error.
func (s *Store) List(userID string) []models.Warn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.entries[userID]
	result := make([]models.Warn, len(stored))
	copy(result, stored)
	return result
}

// Count returns the number of warnings stored for the user.
func (s *Store) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries[userID])
}

// Remove deletes the warning with the given ID from the user's list.
// When the last warning goes, the user's entry is deleted entirely so a
// present key always maps to a non-empty list. The remaining records are
// returned from the same critical section, letting callers re-render
// without a second read racing a concurrent mutation.
func (s *Store) Remove(userID, warnID string) (removed models.Warn, remaining []models.Warn, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.entries[userID]
	if !exists {
		return models.Warn{}, nil, false
	}

	index := -1
	for i, warn := range stored {
		if warn.ID == warnID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Warn{}, nil, false
	}

	removed = stored[index]
	stored = append(stored[:index], stored[index+1:]...)

	if len(stored) == 0 {
		delete(s.entries, userID)
		return removed, nil, true
	}

	s.entries[userID] = stored
	remaining = make([]models.Warn, len(stored))
	copy(remaining, stored)
	return removed, remaining, true
}
