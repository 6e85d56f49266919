package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaskRequest defines the data needed to create or replace a task.
type TaskRequest struct {
	Title           string                 `json:"title" binding:"required"`
	Category        string                 `json:"category"`
	DurationMinutes int                    `json:"duration_minutes" binding:"min=0"`
	Deadline        time.Time              `json:"deadline"`
	AutoDistribute  bool                   `json:"auto_distribute"`
	Description     string                 `json:"description"`
	Status          domain.TaskStatus      `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Budget          decimal.Decimal        `json:"budget"`
	Priority        *int                   `json:"priority,omitempty"`
	Schedule        []domain.ScheduleBlock `json:"schedule,omitempty"`
}

func (r TaskRequest) Validate() error {
	if r.Budget.IsNegative() {
		return fmt.Errorf("%w: budget cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// ToTaskRequest builds the write payload for an existing task.
func ToTaskRequest(t domain.Task) TaskRequest {
	return TaskRequest{
		Title:           t.Title,
		Category:        t.Category,
		DurationMinutes: t.DurationMinutes,
		Deadline:        t.Deadline,
		AutoDistribute:  t.AutoDistribute,
		Description:     t.Description,
		Status:          t.Status,
		Budget:          t.Budget,
		Priority:        t.Priority,
		Schedule:        t.Schedule,
	}
}
