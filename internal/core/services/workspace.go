package services

import (
	"context"

	"github.com/SscSPs/lifedash/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Workspace wires the stores of one signed-in client together.
type Workspace struct {
	Session *Session
	Auth    *AuthService
	Finance *FinanceStore
	Garage  *GarageStore
	Tasks   *TaskStore
}

// NewWorkspace builds every store on top of gw. session must be the
// credential source gw was created with.
func NewWorkspace(gw ports.Gateway, session *Session) *Workspace {
	finance := NewFinanceStore(gw)
	return &Workspace{
		Session: session,
		Auth:    NewAuthService(gw, session),
		Finance: finance,
		Garage:  NewGarageStore(gw, finance),
		Tasks:   NewTaskStore(gw),
	}
}

// Initialize loads every collection concurrently. Each collection records its
// own outcome; the first error is returned once all fetches have finished.
func (w *Workspace) Initialize(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return w.Finance.FetchAccounts(ctx) })
	g.Go(func() error { return w.Finance.FetchTransactions(ctx) })
	g.Go(func() error { return w.Finance.FetchSubscriptions(ctx) })
	g.Go(func() error { return w.Garage.FetchVehicles(ctx) })
	g.Go(func() error { return w.Tasks.FetchTasks(ctx) })
	return g.Wait()
}
