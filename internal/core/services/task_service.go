package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/dto"
)

type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
}

func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade) portssvc.TaskSvcFacade {
	return &taskService{taskRepo: taskRepo}
}

func taskFromRequest(req dto.TaskRequest) domain.Task {
	t := domain.Task{
		Title:           strings.TrimSpace(req.Title),
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Deadline:        req.Deadline,
		AutoDistribute:  req.AutoDistribute,
		Description:     req.Description,
		Status:          req.Status,
		Budget:          req.Budget,
		Priority:        req.Priority,
		Schedule:        req.Schedule,
	}
	if t.Status == "" {
		t.Status = domain.Pending
	}
	return t
}

func (s *taskService) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.taskRepo.ListTasks(ctx, userID)
}

func (s *taskService) CreateTask(ctx context.Context, userID string, req dto.TaskRequest) (*domain.Task, error) {
	t, err := s.taskRepo.SaveTask(ctx, userID, taskFromRequest(req))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &t, nil
}

func (s *taskService) UpdateTask(ctx context.Context, userID string, taskID int64, req dto.TaskRequest) (*domain.Task, error) {
	t := taskFromRequest(req)
	t.ID = taskID
	if err := s.taskRepo.UpdateTask(ctx, userID, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	return s.taskRepo.DeleteTask(ctx, userID, taskID)
}
