package mapping

import (
	"encoding/json"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

var taskSchema = struct {
	ID, Title, Category, DurationMinutes, Deadline, AutoDistribute,
	Description, Status, Budget, Priority, Schedule aliases
}{
	ID:              aliases{"id", "task_id", "taskId"},
	Title:           aliases{"title"},
	Category:        aliases{"category"},
	DurationMinutes: aliases{"duration_minutes", "durationMinutes"},
	Deadline:        aliases{"deadline", "due_date", "dueDate"},
	AutoDistribute:  aliases{"auto_distribute", "autoDistribute"},
	Description:     aliases{"description"},
	Status:          aliases{"status"},
	Budget:          aliases{"budget"},
	Priority:        aliases{"priority"},
	Schedule:        aliases{"schedule", "blocks", "sessions"},
}

var scheduleBlockSchema = struct {
	Start, DurationMinutes aliases
}{
	Start:           aliases{"start", "start_time", "startTime"},
	DurationMinutes: aliases{"duration_minutes", "durationMinutes"},
}

// NormalizeTasks converts a wire list of tasks.
func NormalizeTasks(raw json.RawMessage) []domain.Task {
	items := decodeList(raw)
	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, toDomainTask(item))
	}
	return tasks
}

func toDomainTask(o rawObject) domain.Task {
	s := taskSchema
	t := domain.Task{
		ID:              o.int64(s.ID),
		Title:           o.str(s.Title),
		Category:        o.str(s.Category),
		DurationMinutes: o.int(s.DurationMinutes),
		Deadline:        o.time(s.Deadline),
		AutoDistribute:  o.bool(s.AutoDistribute),
		Description:     o.str(s.Description),
		Status:          domain.TaskStatus(o.str(s.Status)),
		Budget:          o.decimal(s.Budget),
		Priority:        o.optInt(s.Priority),
	}
	if !t.Status.Valid() {
		t.Status = domain.Pending
	}
	for _, b := range o.list(s.Schedule) {
		t.Schedule = append(t.Schedule, domain.ScheduleBlock{
			Start:           b.time(scheduleBlockSchema.Start),
			DurationMinutes: b.int(scheduleBlockSchema.DurationMinutes),
		})
	}
	return t
}
