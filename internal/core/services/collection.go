package services

import (
	"sync"

	"github.com/SscSPs/lifedash/internal/apperrors"
)

// CollectionState is the lifecycle of a mirrored collection.
type CollectionState string

const (
	StateIdle      CollectionState = "idle"
	StateLoading   CollectionState = "loading"
	StatePopulated CollectionState = "populated"
	StateFailed    CollectionState = "failed"
)

// Collection mirrors one server collection. Every fetch takes a sequence
// token and only the newest token may apply its result, so a slow response
// can never overwrite a newer one.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	state CollectionState
	err   string
	seq   uint64
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}, state: StateIdle}
}

// Items returns a copy of the mirrored records.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) State() CollectionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Collection[T]) Loading() bool {
	return c.State() == StateLoading
}

// Err is the message of the last failure, empty when the last operation succeeded.
func (c *Collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// begin marks a fetch in flight and returns its token.
func (c *Collection[T]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = StateLoading
	return c.seq
}

// apply replaces the items if token is still the newest. It reports whether
// the result was applied.
func (c *Collection[T]) apply(token uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return false
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.state = StatePopulated
	c.err = ""
	return true
}

// fail records a fetch failure for token. Previous items are kept.
func (c *Collection[T]) fail(token uint64, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return false
	}
	c.state = StateFailed
	c.err = apperrors.HumanMessage(err)
	return true
}

// recordError notes a failed write. Items and state are left alone.
func (c *Collection[T]) recordError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = apperrors.HumanMessage(err)
}

func (c *Collection[T]) clearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = ""
}
