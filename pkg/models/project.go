package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// Project represents an outcome-oriented grouping of tasks
type Project struct {
	ID               uuid.UUID     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name             string        `json:"name" gorm:"not null;type:varchar(200)"`
	OutcomeStatement *string       `json:"outcome_statement"`
	Status           ProjectStatus `json:"status" gorm:"not null;type:varchar(20);default:'active'"`
	ParentProjectID  *uuid.UUID    `json:"parent_project_id" gorm:"type:uuid"`
	CreatedAt        time.Time     `json:"created_at" gorm:"not null;default:now()"`
	UpdatedAt        time.Time     `json:"updated_at" gorm:"not null;default:now()"`
	CompletedAt      *time.Time    `json:"completed_at"`
	ArchivedAt       *time.Time    `json:"archived_at"`
	LastActivityAt   *time.Time    `json:"last_activity_at"`
	DeletedAt        *time.Time    `json:"-" gorm:"index"`

	// Maintained by the database; never written by application code.
	SearchVector string `json:"-" gorm:"->;-:migration;type:tsvector"`

	// One-to-Many Relations
	Tasks []*Task `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
	Notes []*Note `json:"notes,omitempty" gorm:"foreignKey:ProjectID"`
}

// ProjectTaskStats summarizes the tasks under a project.
type ProjectTaskStats struct {
	TaskCount          int64 `json:"task_count"`
	CompletedTaskCount int64 `json:"completed_task_count"`
	NextTaskCount      int64 `json:"next_task_count"`
}
