package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/core/ports"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/utils/mapping"
	"github.com/go-playground/validator/v10"
)

const tasksPath = "tasks"

// TaskStore mirrors the user's tasks.
type TaskStore struct {
	BaseService
	gw        ports.Gateway
	validator *validator.Validate

	Tasks *Collection[domain.Task]
}

func NewTaskStore(gw ports.Gateway) *TaskStore {
	return &TaskStore{
		gw:        gw,
		validator: newRequestValidator(),
		Tasks:     NewCollection[domain.Task](),
	}
}

func (s *TaskStore) validate(req any) error {
	return validateRequest(s.validator, req)
}

func (s *TaskStore) FetchTasks(ctx context.Context) error {
	return fetchInto(ctx, &s.BaseService, s.gw, s.Tasks, tasksPath, mapping.NormalizeTasks)
}

// CreateTask saves a new task. New tasks always start as pending.
func (s *TaskStore) CreateTask(ctx context.Context, req dto.TaskRequest) error {
	req.Status = domain.Pending
	if err := write(ctx, &s.BaseService, s.gw, s.Tasks, s.validate, http.MethodPost, tasksPath, req); err != nil {
		return err
	}
	s.planSessions(ctx, req)
	return s.FetchTasks(ctx)
}

func (s *TaskStore) UpdateTask(ctx context.Context, id int64, req dto.TaskRequest) error {
	if err := write(ctx, &s.BaseService, s.gw, s.Tasks, s.validate, http.MethodPut, fmt.Sprintf("%s/%d", tasksPath, id), req); err != nil {
		return err
	}
	return s.FetchTasks(ctx)
}

func (s *TaskStore) DeleteTask(ctx context.Context, id int64) error {
	if err := write[domain.Task](ctx, &s.BaseService, s.gw, s.Tasks, nil, http.MethodDelete, fmt.Sprintf("%s/%d", tasksPath, id), nil); err != nil {
		return err
	}
	return s.FetchTasks(ctx)
}

// planSessions is where tasks flagged auto_distribute would be split into
// work sessions. Only the request is logged; nothing is scheduled.
func (s *TaskStore) planSessions(ctx context.Context, req dto.TaskRequest) {
	if !req.AutoDistribute {
		s.LogDebug(ctx, "Task scheduled as a single block", slog.String("title", req.Title))
		return
	}
	s.LogInfo(ctx, "Auto-scheduler requested",
		slog.String("title", req.Title),
		slog.Int("duration_minutes", req.DurationMinutes),
		slog.Time("deadline", req.Deadline),
	)
}
