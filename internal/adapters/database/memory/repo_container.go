// Package memory keeps the reference backend's data in process memory.
// Every repository is safe for concurrent use and returns copies.
package memory

import (
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
)

// NewRepositoryProvider returns a fresh, empty set of repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         NewUserRepository(),
		AccountRepo:      NewAccountRepository(),
		TransactionRepo:  NewTransactionRepository(),
		SubscriptionRepo: NewSubscriptionRepository(),
		VehicleRepo:      NewVehicleRepository(),
		TaskRepo:         NewTaskRepository(),
	}
}

// ownedRows is the storage shared by the per-user repositories.
type ownedRows[T any] struct {
	nextID int64
	rows   map[string][]T
}

func newOwnedRows[T any]() ownedRows[T] {
	return ownedRows[T]{rows: make(map[string][]T)}
}

func (o *ownedRows[T]) newID() int64 {
	o.nextID++
	return o.nextID
}

func (o *ownedRows[T]) list(userID string) []T {
	src := o.rows[userID]
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// index returns the position of the row whose id matches, or -1.
func (o *ownedRows[T]) index(userID string, match func(T) bool) int {
	for i, row := range o.rows[userID] {
		if match(row) {
			return i
		}
	}
	return -1
}

func (o *ownedRows[T]) remove(userID string, i int) {
	rows := o.rows[userID]
	o.rows[userID] = append(rows[:i], rows[i+1:]...)
}
