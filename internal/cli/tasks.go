package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/utils"
	"github.com/google/subcommands"
)

type tasksCmd struct {
	app *App
	all bool
}

func (*tasksCmd) Name() string     { return "tasks" }
func (*tasksCmd) Synopsis() string { return "list open tasks" }
func (*tasksCmd) Usage() string    { return "lifedash tasks [-all]\n" }

func (p *tasksCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.all, "all", false, "Include completed and cancelled tasks.")
}

func (p *tasksCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	store := p.app.Workspace.Tasks
	if err := store.FetchTasks(ctx); err != nil {
		return p.app.fail(err)
	}
	rows := [][]string{{"ID", "TITLE", "STATUS", "DEADLINE", "BUDGET"}}
	for _, t := range store.Tasks.Items() {
		if !p.all && (t.Status == domain.Completed || t.Status == domain.Cancelled) {
			continue
		}
		budget := "-"
		if t.Budget.IsPositive() {
			budget = utils.FormatMoney(t.Budget, utils.DefaultCurrency)
		}
		rows = append(rows, []string{fmt.Sprint(t.ID), t.Title, statusLabel(t.Status), formatDate(t.Deadline), budget})
	}
	if len(rows) == 1 {
		emptyNote(p.app.out, "tasks")
		return subcommands.ExitSuccess
	}
	writeTable(p.app.out, rows)
	return subcommands.ExitSuccess
}

func statusLabel(s domain.TaskStatus) string {
	label := strings.ReplaceAll(string(s), "_", " ")
	switch s {
	case domain.Completed:
		return positiveStyle.Render(label)
	case domain.Cancelled:
		return mutedStyle.Render(label)
	}
	return label
}

type addTaskCmd struct {
	app      *App
	req      dto.TaskRequest
	priority int
}

func (*addTaskCmd) Name() string     { return "add-task" }
func (*addTaskCmd) Synopsis() string { return "create a task" }
func (*addTaskCmd) Usage() string {
	return "lifedash add-task -title <title> [-deadline YYYY-MM-DD] [-duration minutes] [-budget amount]\n"
}

func (p *addTaskCmd) SetFlags(f *flag.FlagSet) {
	p.req = dto.TaskRequest{}
	f.StringVar(&p.req.Title, "title", "", "Task title.")
	f.StringVar(&p.req.Category, "category", "", "Task category.")
	f.StringVar(&p.req.Description, "desc", "", "Description.")
	f.IntVar(&p.req.DurationMinutes, "duration", 0, "Estimated minutes of work.")
	f.Var(dateValue{&p.req.Deadline}, "deadline", "Deadline.")
	f.Var(decimalValue{&p.req.Budget}, "budget", "Money set aside for the task.")
	f.BoolVar(&p.req.AutoDistribute, "auto", false, "Spread the work over the days before the deadline.")
	f.IntVar(&p.priority, "priority", 0, "Priority, 0 for none.")
}

func (p *addTaskCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	if p.priority != 0 {
		p.req.Priority = &p.priority
	}
	if err := p.app.Workspace.Tasks.CreateTask(ctx, p.req); err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.out, "Task %q added\n", p.req.Title)
	return subcommands.ExitSuccess
}

type setTaskStatusCmd struct {
	app *App
}

func (*setTaskStatusCmd) Name() string     { return "task-status" }
func (*setTaskStatusCmd) Synopsis() string { return "move a task to another status" }
func (*setTaskStatusCmd) Usage() string {
	return "lifedash task-status <id> <pending|in_progress|completed|cancelled>\n"
}
func (*setTaskStatusCmd) SetFlags(_ *flag.FlagSet) {}

func (p *setTaskStatusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(p.app.errOut, p.Usage())
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	status := domain.TaskStatus(strings.ToLower(f.Arg(1)))
	if err != nil || !status.Valid() {
		fmt.Fprint(p.app.errOut, p.Usage())
		return subcommands.ExitUsageError
	}
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	store := p.app.Workspace.Tasks
	if err := store.FetchTasks(ctx); err != nil {
		return p.app.fail(err)
	}
	for _, t := range store.Tasks.Items() {
		if t.ID != id {
			continue
		}
		req := dto.ToTaskRequest(t)
		req.Status = status
		if err := store.UpdateTask(ctx, id, req); err != nil {
			return p.app.fail(err)
		}
		fmt.Fprintf(p.app.out, "Task %d is now %s\n", id, statusLabel(status))
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(p.app.errOut, "Error: task %d not found\n", id)
	return subcommands.ExitFailure
}
