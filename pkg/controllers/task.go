// Package controllers implements the business rules sitting between the
// HTTP handlers and the repositories: lifecycle invariants, inbox
// conversion, and search clamping.
package controllers

import (
	"time"
	"unicode/utf8"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/avivsarig/gtd/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	maxTaskTitleLen = 500

	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04:05"
)

// TaskCreate is the input for creating a task. Dates are plain
// "2006-01-02" strings, times "15:04:05".
type TaskCreate struct {
	Title           string            `json:"title" binding:"required"`
	Description     *string           `json:"description"`
	Status          models.TaskStatus `json:"status"`
	ScheduledDate   *string           `json:"scheduled_date"`
	ScheduledTime   *string           `json:"scheduled_time"`
	DueDate         *string           `json:"due_date"`
	ProjectID       *uuid.UUID        `json:"project_id"`
	BlockedByTaskID *uuid.UUID        `json:"blocked_by_task_id"`
}

// TaskUpdate is a sparse patch: absent fields are untouched, explicit
// nulls clear the column.
type TaskUpdate struct {
	Title           Optional[string]            `json:"title"`
	Description     Optional[*string]           `json:"description"`
	Status          Optional[models.TaskStatus] `json:"status"`
	ScheduledDate   Optional[*string]           `json:"scheduled_date"`
	ScheduledTime   Optional[*string]           `json:"scheduled_time"`
	DueDate         Optional[*string]           `json:"due_date"`
	ProjectID       Optional[*uuid.UUID]        `json:"project_id"`
	BlockedByTaskID Optional[*uuid.UUID]        `json:"blocked_by_task_id"`
}

// TaskController applies task lifecycle rules on top of a TaskRepository.
type TaskController struct {
	repo TaskRepository
}

// NewTaskController creates a task controller.
func NewTaskController(repo TaskRepository) *TaskController {
	return &TaskController{repo: repo}
}

// List returns live tasks matching the filter, newest first.
func (c *TaskController) List(filter repository.TaskFilter) ([]models.Task, error) {
	return c.repo.List(filter)
}

// Get returns a single live task.
func (c *TaskController) Get(id uuid.UUID) (*models.Task, error) {
	task, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.NotFound("task with id %s not found", id)
	}
	return task, nil
}

// Create validates the input and persists a new task.
//
// A task created with a blocker is forced into 'waiting' status regardless
// of what the caller supplied.
func (c *TaskController) Create(input TaskCreate) (*models.Task, error) {
	if err := validateTaskTitle(input.Title); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.TaskStatusNext
	}
	if !status.Valid() {
		return nil, apperrors.Validation("invalid task status %q", status)
	}
	if input.BlockedByTaskID != nil {
		status = models.TaskStatusWaiting
	}

	scheduledDate, err := parseDate(input.ScheduledDate)
	if err != nil {
		return nil, err
	}
	scheduledTime, err := parseTimeOfDay(input.ScheduledTime)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:           input.Title,
		Description:     input.Description,
		Status:          status,
		ScheduledDate:   scheduledDate,
		ScheduledTime:   scheduledTime,
		DueDate:         dueDate,
		ProjectID:       input.ProjectID,
		BlockedByTaskID: input.BlockedByTaskID,
	}
	if err := c.repo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a sparse patch to a task.
//
// Setting a blocker forces 'waiting' status; clearing one deliberately does
// not touch status. A patch that never mentions the blocker never changes
// status as a side effect either.
func (c *TaskController) Update(id uuid.UUID, input TaskUpdate) (*models.Task, error) {
	task, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.NotFound("task with id %s not found", id)
	}

	fields := map[string]any{}

	if input.Title.Set {
		if err := validateTaskTitle(input.Title.Value); err != nil {
			return nil, err
		}
		fields["title"] = input.Title.Value
	}
	if input.Description.Set {
		fields["description"] = nullable(input.Description.Value)
	}
	if input.Status.Set {
		if !input.Status.Value.Valid() {
			return nil, apperrors.Validation("invalid task status %q", input.Status.Value)
		}
		fields["status"] = input.Status.Value
	}
	if input.ScheduledDate.Set {
		d, err := parseDate(input.ScheduledDate.Value)
		if err != nil {
			return nil, err
		}
		fields["scheduled_date"] = nullable(d)
	}
	if input.ScheduledTime.Set {
		t, err := parseTimeOfDay(input.ScheduledTime.Value)
		if err != nil {
			return nil, err
		}
		fields["scheduled_time"] = nullable(t)
	}
	if input.DueDate.Set {
		d, err := parseDate(input.DueDate.Value)
		if err != nil {
			return nil, err
		}
		fields["due_date"] = nullable(d)
	}
	if input.ProjectID.Set {
		fields["project_id"] = nullable(input.ProjectID.Value)
	}
	if input.BlockedByTaskID.Set {
		fields["blocked_by_task_id"] = nullable(input.BlockedByTaskID.Value)
		if input.BlockedByTaskID.Value != nil {
			fields["status"] = models.TaskStatusWaiting
		}
	}

	if err := c.repo.Update(task, fields); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete soft-deletes a task.
func (c *TaskController) Delete(id uuid.UUID) error {
	task, err := c.repo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return apperrors.NotFound("task with id %s not found", id)
	}
	return c.repo.SoftDelete(task)
}

// Complete stamps completed_at. Completing an already completed task
// restamps the time rather than erroring.
func (c *TaskController) Complete(id uuid.UUID) (*models.Task, error) {
	return c.setCompletedAt(id, ptr(time.Now().UTC()))
}

// Uncomplete clears completed_at.
func (c *TaskController) Uncomplete(id uuid.UUID) (*models.Task, error) {
	return c.setCompletedAt(id, nil)
}

func (c *TaskController) setCompletedAt(id uuid.UUID, at *time.Time) (*models.Task, error) {
	task, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.NotFound("task with id %s not found", id)
	}
	if err := c.repo.Update(task, map[string]any{"completed_at": nullable(at)}); err != nil {
		return nil, err
	}
	return task, nil
}

// BulkUpdateStatus sets the status on every task that still resolves to a
// live row. Ids that do not resolve are skipped silently; the contract is
// best-effort, and the returned slice holds exactly the tasks updated.
func (c *TaskController) BulkUpdateStatus(ids []uuid.UUID, status models.TaskStatus) ([]models.Task, error) {
	if !status.Valid() {
		return nil, apperrors.Validation("invalid task status %q", status)
	}

	updated := make([]models.Task, 0, len(ids))
	for _, id := range ids {
		task, err := c.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if task == nil {
			continue
		}
		if err := c.repo.Update(task, map[string]any{"status": status}); err != nil {
			return nil, err
		}
		updated = append(updated, *task)
	}
	return updated, nil
}

func validateTaskTitle(title string) error {
	if title == "" {
		return apperrors.Validation("task title must not be empty")
	}
	if utf8.RuneCountInString(title) > maxTaskTitleLen {
		return apperrors.Validation("task title must be at most %d characters", maxTaskTitleLen)
	}
	return nil
}

func parseDate(s *string) (*datatypes.Date, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, apperrors.Validation("invalid date %q, expected YYYY-MM-DD", *s)
	}
	d := datatypes.Date(t)
	return &d, nil
}

func parseTimeOfDay(s *string) (*datatypes.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(timeOfDayLayout, *s)
	if err != nil {
		return nil, apperrors.Validation("invalid time %q, expected HH:MM:SS", *s)
	}
	tod := datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
	return &tod, nil
}

func ptr[T any](v T) *T {
	return &v
}
