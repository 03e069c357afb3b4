package storage

import "github.com/xaenox/stataddict/internal/models"

// Storage is the counter table an aggregation run writes into.
type Storage interface {
	SetUser(user models.User)
	AddUser(userID string)
	Add(category models.Category, userID string, n uint64)
	Skip()
	Snapshot() *models.CounterSet
	Reset()
}
