package middleware

import (
	"log/slog"
	"sync"
)

// MemoryNavigator is a ports.Navigator that tracks the current path in memory
// and routes every redirect through a RouteGuard.
type MemoryNavigator struct {
	mu            sync.Mutex
	current       string
	guard         *RouteGuard
	authenticated func() bool
}

// NewMemoryNavigator starts at start. authenticated reports the live session state.
func NewMemoryNavigator(start string, guard *RouteGuard, authenticated func() bool) *MemoryNavigator {
	if guard == nil {
		guard = NewRouteGuard(nil)
	}
	if authenticated == nil {
		authenticated = func() bool { return false }
	}
	return &MemoryNavigator{current: start, guard: guard, authenticated: authenticated}
}

func (n *MemoryNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Redirect navigates to path and returns where the guard let it land.
func (n *MemoryNavigator) Redirect(path string) string {
	landed := n.guard.Resolve(path, n.authenticated())
	n.mu.Lock()
	n.current = landed
	n.mu.Unlock()
	slog.Debug("Navigated", slog.String("to", path), slog.String("landed", landed))
	return landed
}
