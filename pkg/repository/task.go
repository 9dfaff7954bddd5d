package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskFilter narrows task listings. All set fields are ANDed together.
type TaskFilter struct {
	Status          *models.TaskStatus
	ProjectID       *uuid.UUID
	ContextID       *uuid.UUID
	ScheduledAfter  *time.Time
	ScheduledBefore *time.Time
}

// TaskRepository is the data access layer for tasks.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a task repository backed by db.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns all live tasks matching the filter, newest first.
func (r *TaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	query := r.db.Model(&models.Task{}).Where("tasks.deleted_at IS NULL")

	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.ProjectID != nil {
		query = query.Where("tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.ContextID != nil {
		query = query.
			Joins("JOIN task_contexts ON task_contexts.task_id = tasks.id").
			Where("task_contexts.context_id = ?", *filter.ContextID)
	}
	if filter.ScheduledAfter != nil {
		query = query.Where("tasks.scheduled_date >= ?", *filter.ScheduledAfter)
	}
	if filter.ScheduledBefore != nil {
		query = query.Where("tasks.scheduled_date <= ?", *filter.ScheduledBefore)
	}

	var tasks []models.Task
	if err := query.Order("tasks.created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns the live task with the given id, or nil if it does not
// exist or has been soft-deleted.
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return &task, nil
}

// Create inserts a new task and reloads it so server-assigned values
// (id, timestamps) are populated.
func (r *TaskRepository) Create(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return r.reload(task)
}

// Update applies the given column values to the task and reloads it.
// Only the supplied columns change; the updated_at trigger stamps the rest.
func (r *TaskRepository) Update(task *models.Task, fields map[string]any) error {
	if len(fields) > 0 {
		if err := r.db.Model(task).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to update task %s: %w", task.ID, err)
		}
	}
	return r.reload(task)
}

// SoftDelete tombstones the task. The row stays in the database but
// disappears from every normal read path.
func (r *TaskRepository) SoftDelete(task *models.Task) error {
	now := time.Now().UTC()
	if err := r.db.Model(task).Update("deleted_at", now).Error; err != nil {
		return fmt.Errorf("failed to delete task %s: %w", task.ID, err)
	}
	task.DeletedAt = &now
	return nil
}

func (r *TaskRepository) reload(task *models.Task) error {
	if err := r.db.First(task, "id = ?", task.ID).Error; err != nil {
		return fmt.Errorf("failed to reload task %s: %w", task.ID, err)
	}
	return nil
}
