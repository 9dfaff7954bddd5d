package controllers

import (
	"time"
	"unicode/utf8"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
)

const maxProjectNameLen = 200

// ProjectCreate is the input for creating a project.
type ProjectCreate struct {
	Name             string               `json:"name" binding:"required"`
	OutcomeStatement *string              `json:"outcome_statement"`
	Status           models.ProjectStatus `json:"status"`
	ParentProjectID  *uuid.UUID           `json:"parent_project_id"`
}

// ProjectUpdate is a sparse patch for a project.
type ProjectUpdate struct {
	Name             Optional[string]               `json:"name"`
	OutcomeStatement Optional[*string]              `json:"outcome_statement"`
	Status           Optional[models.ProjectStatus] `json:"status"`
	ParentProjectID  Optional[*uuid.UUID]           `json:"parent_project_id"`
}

// ProjectWithStats bundles a project with its live task counts.
type ProjectWithStats struct {
	models.Project
	models.ProjectTaskStats
}

// ProjectController applies project lifecycle rules on top of a
// ProjectRepository.
type ProjectController struct {
	repo ProjectRepository
}

// NewProjectController creates a project controller.
func NewProjectController(repo ProjectRepository) *ProjectController {
	return &ProjectController{repo: repo}
}

// List returns live projects, newest first, optionally filtered by status.
func (c *ProjectController) List(status *models.ProjectStatus) ([]models.Project, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.Validation("invalid project status %q", *status)
	}
	return c.repo.List(status)
}

// ListWithStats returns live projects with their task statistics.
func (c *ProjectController) ListWithStats(status *models.ProjectStatus) ([]ProjectWithStats, error) {
	projects, err := c.List(status)
	if err != nil {
		return nil, err
	}

	result := make([]ProjectWithStats, 0, len(projects))
	for _, project := range projects {
		stats, err := c.repo.TaskStats(project.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, ProjectWithStats{Project: project, ProjectTaskStats: *stats})
	}
	return result, nil
}

// Get returns a single live project.
func (c *ProjectController) Get(id uuid.UUID) (*models.Project, error) {
	project, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperrors.NotFound("project with id %s not found", id)
	}
	return project, nil
}

// GetWithStats returns a single live project with its task statistics.
func (c *ProjectController) GetWithStats(id uuid.UUID) (*ProjectWithStats, error) {
	project, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	stats, err := c.repo.TaskStats(project.ID)
	if err != nil {
		return nil, err
	}
	return &ProjectWithStats{Project: *project, ProjectTaskStats: *stats}, nil
}

// Create validates the input and persists a new project. A fresh project's
// last_activity_at starts at its creation time.
func (c *ProjectController) Create(input ProjectCreate) (*models.Project, error) {
	if err := validateProjectName(input.Name); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	if !status.Valid() {
		return nil, apperrors.Validation("invalid project status %q", status)
	}

	project := &models.Project{
		Name:             input.Name,
		OutcomeStatement: input.OutcomeStatement,
		Status:           status,
		ParentProjectID:  input.ParentProjectID,
	}
	if err := c.repo.Create(project); err != nil {
		return nil, err
	}
	if err := c.repo.Update(project, map[string]any{"last_activity_at": project.CreatedAt}); err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies a sparse patch to a project.
//
// The first transition into 'completed' stamps completed_at; later updates
// leave an existing stamp alone. Every update refreshes last_activity_at.
func (c *ProjectController) Update(id uuid.UUID, input ProjectUpdate) (*models.Project, error) {
	project, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperrors.NotFound("project with id %s not found", id)
	}

	now := time.Now().UTC()
	fields := map[string]any{"last_activity_at": now}

	if input.Name.Set {
		if err := validateProjectName(input.Name.Value); err != nil {
			return nil, err
		}
		fields["name"] = input.Name.Value
	}
	if input.OutcomeStatement.Set {
		fields["outcome_statement"] = nullable(input.OutcomeStatement.Value)
	}
	if input.Status.Set {
		if !input.Status.Value.Valid() {
			return nil, apperrors.Validation("invalid project status %q", input.Status.Value)
		}
		fields["status"] = input.Status.Value
		if input.Status.Value == models.ProjectStatusCompleted && project.CompletedAt == nil {
			fields["completed_at"] = now
		}
	}
	if input.ParentProjectID.Set {
		fields["parent_project_id"] = nullable(input.ParentProjectID.Value)
	}

	if err := c.repo.Update(project, fields); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete soft-deletes a project.
func (c *ProjectController) Delete(id uuid.UUID) error {
	project, err := c.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return apperrors.NotFound("project with id %s not found", id)
	}
	return c.repo.SoftDelete(project)
}

// Complete marks a project completed. Unlike task completion there is no
// idempotence guard: re-completing restamps completed_at.
func (c *ProjectController) Complete(id uuid.UUID) (*models.Project, error) {
	project, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperrors.NotFound("project with id %s not found", id)
	}

	now := time.Now().UTC()
	fields := map[string]any{
		"status":           models.ProjectStatusCompleted,
		"completed_at":     now,
		"last_activity_at": now,
	}
	if err := c.repo.Update(project, fields); err != nil {
		return nil, err
	}
	return project, nil
}

func validateProjectName(name string) error {
	if name == "" {
		return apperrors.Validation("project name must not be empty")
	}
	if utf8.RuneCountInString(name) > maxProjectNameLen {
		return apperrors.Validation("project name must be at most %d characters", maxProjectNameLen)
	}
	return nil
}
