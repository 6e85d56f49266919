package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
)

type TaskRepository struct {
	mu   sync.RWMutex
	data ownedRows[domain.Task]
}

var _ portsrepo.TaskRepositoryFacade = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{data: newOwnedRows[domain.Task]()}
}

func byTaskID(id int64) func(domain.Task) bool {
	return func(t domain.Task) bool { return t.ID == id }
}

func (r *TaskRepository) SaveTask(_ context.Context, userID string, task domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = r.data.newID()
	r.data.rows[userID] = append(r.data.rows[userID], task)
	return task, nil
}

func (r *TaskRepository) ListTasks(_ context.Context, userID string) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data.list(userID), nil
}

func (r *TaskRepository) UpdateTask(_ context.Context, userID string, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.data.index(userID, byTaskID(task.ID))
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.data.rows[userID][i] = task
	return nil
}

func (r *TaskRepository) DeleteTask(_ context.Context, userID string, taskID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.data.index(userID, byTaskID(taskID))
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.data.remove(userID, i)
	return nil
}
