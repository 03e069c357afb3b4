package models

// Counter maps user IDs to counts and remembers the order in which
// users were first counted.
type Counter struct {
	counts map[string]uint64
	order  []string
}

func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]uint64),
	}
}

// Add increases the count of userID by n. Adding zero does not create an entry.
func (c *Counter) Add(userID string, n uint64) {
	if n == 0 {
		return
	}
	if _, exists := c.counts[userID]; !exists {
		c.order = append(c.order, userID)
	}
	c.counts[userID] += n
}

func (c *Counter) Inc(userID string) {
	c.Add(userID, 1)
}

func (c *Counter) Get(userID string) uint64 {
	return c.counts[userID]
}

func (c *Counter) Len() int {
	return len(c.order)
}

// Entries returns the counts in first-seen order.
func (c *Counter) Entries() []UserCount {
	entries := make([]UserCount, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, UserCount{UserID: id, Count: c.counts[id]})
	}
	return entries
}

// Map returns a copy of the counts keyed by user ID.
func (c *Counter) Map() map[string]uint64 {
	m := make(map[string]uint64, len(c.counts))
	for id, n := range c.counts {
		m[id] = n
	}
	return m
}

func (c *Counter) Clone() *Counter {
	clone := &Counter{
		counts: c.Map(),
		order:  make([]string, len(c.order)),
	}
	copy(clone.order, c.order)
	return clone
}

// CounterSet is the result of one aggregation run.
type CounterSet struct {
	Users    map[string]User
	Counters map[Category]*Counter
	// Skipped counts "message" entries dropped for lacking a sender.
	Skipped int
}

func NewCounterSet() *CounterSet {
	set := &CounterSet{
		Users:    make(map[string]User),
		Counters: make(map[Category]*Counter, len(Categories)),
	}
	for _, category := range Categories {
		set.Counters[category] = NewCounter()
	}
	return set
}

// Counter returns the counter for category, never nil.
func (s *CounterSet) Counter(category Category) *Counter {
	if c, ok := s.Counters[category]; ok && c != nil {
		return c
	}
	return NewCounter()
}

// DisplayName returns the last seen name of userID, falling back to the ID.
func (s *CounterSet) DisplayName(userID string) string {
	if user, ok := s.Users[userID]; ok && user.Name != "" {
		return user.Name
	}
	return userID
}
