package repositories

import (
	"context"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

type TaskReader interface {
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
}

type TaskWriter interface {
	SaveTask(ctx context.Context, userID string, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, userID string, task domain.Task) error
	DeleteTask(ctx context.Context, userID string, taskID int64) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
