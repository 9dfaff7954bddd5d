package controllers

import (
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/avivsarig/gtd/pkg/repository"
	"github.com/google/uuid"
)

// The controller layer owns the business rules and talks to persistence
// through these interfaces; pkg/repository provides the gorm-backed
// implementations, tests substitute in-memory fakes.
//
// A nil entity with a nil error means "no live row" — controllers translate
// that into a NotFound, so soft-deleted rows are indistinguishable from
// absent ones everywhere above this line.

// TaskRepository is the persistence surface the task controller needs.
type TaskRepository interface {
	List(filter repository.TaskFilter) ([]models.Task, error)
	GetByID(id uuid.UUID) (*models.Task, error)
	Create(task *models.Task) error
	Update(task *models.Task, fields map[string]any) error
	SoftDelete(task *models.Task) error
}

// ProjectRepository is the persistence surface the project controller needs.
type ProjectRepository interface {
	List(status *models.ProjectStatus) ([]models.Project, error)
	GetByID(id uuid.UUID) (*models.Project, error)
	Create(project *models.Project) error
	Update(project *models.Project, fields map[string]any) error
	SoftDelete(project *models.Project) error
	TaskStats(projectID uuid.UUID) (*models.ProjectTaskStats, error)
}

// NoteRepository is the persistence surface the note controller needs.
type NoteRepository interface {
	List(projectID *uuid.UUID) ([]models.Note, error)
	GetByID(id uuid.UUID) (*models.Note, error)
	Create(note *models.Note) error
	Update(note *models.Note, fields map[string]any) error
	SoftDelete(note *models.Note) error
}

// ContextRepository is the persistence surface the context controller needs.
type ContextRepository interface {
	List() ([]models.Context, error)
	GetByID(id uuid.UUID) (*models.Context, error)
	GetByName(name string) (*models.Context, error)
	Create(ctx *models.Context) error
	Update(ctx *models.Context, fields map[string]any) error
	SoftDelete(ctx *models.Context) error
}

// InboxRepository is the persistence surface the inbox controller needs.
type InboxRepository interface {
	List(includeProcessed bool) ([]models.InboxItem, error)
	GetByID(id uuid.UUID) (*models.InboxItem, error)
	Create(item *models.InboxItem) error
	UpdateContent(item *models.InboxItem, content string) error
	MarkProcessed(item *models.InboxItem) error
	SoftDelete(item *models.InboxItem) error
	CountUnprocessed() (int64, error)
}

// SearchRepository is the persistence surface the search controller needs.
type SearchRepository interface {
	SearchAll(query string, limit int) ([]models.SearchResult, error)
}
