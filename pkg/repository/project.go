package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository is the data access layer for projects.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a project repository backed by db.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns all live projects, newest first, optionally filtered by status.
func (r *ProjectRepository) List(status *models.ProjectStatus) ([]models.Project, error) {
	query := r.db.Model(&models.Project{}).Where("deleted_at IS NULL")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var projects []models.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetByID returns the live project with the given id, or nil if it does not
// exist or has been soft-deleted.
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return &project, nil
}

// Create inserts a new project and reloads it so server-assigned values are
// populated.
func (r *ProjectRepository) Create(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return r.reload(project)
}

// Update applies the given column values to the project and reloads it.
func (r *ProjectRepository) Update(project *models.Project, fields map[string]any) error {
	if len(fields) > 0 {
		if err := r.db.Model(project).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to update project %s: %w", project.ID, err)
		}
	}
	return r.reload(project)
}

// SoftDelete tombstones the project.
func (r *ProjectRepository) SoftDelete(project *models.Project) error {
	now := time.Now().UTC()
	if err := r.db.Model(project).Update("deleted_at", now).Error; err != nil {
		return fmt.Errorf("failed to delete project %s: %w", project.ID, err)
	}
	project.DeletedAt = &now
	return nil
}

// TaskStats counts the live tasks under a project: total, completed, and
// actionable next tasks.
func (r *ProjectRepository) TaskStats(projectID uuid.UUID) (*models.ProjectTaskStats, error) {
	var stats models.ProjectTaskStats

	base := func() *gorm.DB {
		return r.db.Model(&models.Task{}).
			Where("project_id = ? AND deleted_at IS NULL", projectID)
	}

	if err := base().Count(&stats.TaskCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count project tasks: %w", err)
	}
	if err := base().Where("completed_at IS NOT NULL").Count(&stats.CompletedTaskCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}
	if err := base().Where("status = ? AND completed_at IS NULL", models.TaskStatusNext).
		Count(&stats.NextTaskCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count next tasks: %w", err)
	}

	return &stats, nil
}

func (r *ProjectRepository) reload(project *models.Project) error {
	if err := r.db.First(project, "id = ?", project.ID).Error; err != nil {
		return fmt.Errorf("failed to reload project %s: %w", project.ID, err)
	}
	return nil
}
