package storage

import (
	"sync"

	"github.com/xaenox/stataddict/internal/models"
)

type MemoryStorage struct {
	mu       sync.RWMutex
	users    map[string]models.User
	counters map[models.Category]*models.Counter
	skipped  int
}

func NewMemoryStorage() *MemoryStorage {
	s := &MemoryStorage{}
	s.Reset()
	return s
}

// SetUser records the user, replacing any earlier name.
func (s *MemoryStorage) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user
}

// AddUser registers a user whose name is unknown, keeping any name
// already recorded.
func (s *MemoryStorage) AddUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[userID]; !exists {
		s.users[userID] = models.User{ID: userID}
	}
}

func (s *MemoryStorage) Add(category models.Category, userID string, n uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, exists := s.counters[category]
	if !exists {
		counter = models.NewCounter()
		s.counters[category] = counter
	}
	counter.Add(userID, n)
}

// Skip notes an entry that could not be attributed to any user.
func (s *MemoryStorage) Skip() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skipped++
}

// Snapshot returns a copy of the current counters.
func (s *MemoryStorage) Snapshot() *models.CounterSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := models.NewCounterSet()
	for id, user := range s.users {
		set.Users[id] = user
	}
	for category, counter := range s.counters {
		set.Counters[category] = counter.Clone()
	}
	set.Skipped = s.skipped
	return set
}

// Reset drops every counter and the user table.
func (s *MemoryStorage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]models.User)
	s.counters = make(map[models.Category]*models.Counter, len(models.Categories))
	for _, category := range models.Categories {
		s.counters[category] = models.NewCounter()
	}
	s.skipped = 0
}
