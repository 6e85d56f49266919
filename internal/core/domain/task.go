package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus tracks a task through its lifecycle.
type TaskStatus string

const (
	Pending    TaskStatus = "pending"
	InProgress TaskStatus = "in_progress"
	Completed  TaskStatus = "completed"
	Cancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case Pending, InProgress, Completed, Cancelled:
		return true
	}
	return false
}

// ScheduleBlock is one slot of time reserved for a task.
type ScheduleBlock struct {
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Task is a unit of work with an optional budget and deadline.
type Task struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	DurationMinutes int             `json:"duration_minutes"`
	Deadline        time.Time       `json:"deadline"`
	AutoDistribute  bool            `json:"auto_distribute"`
	Description     string          `json:"description"`
	Status          TaskStatus      `json:"status"`
	Budget          decimal.Decimal `json:"budget"`
	Priority        *int            `json:"priority,omitempty"`
	Schedule        []ScheduleBlock `json:"schedule,omitempty"`
}
