package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskStatus represents the GTD status of a task
type TaskStatus string

const (
	TaskStatusNext      TaskStatus = "next"
	TaskStatusWaiting   TaskStatus = "waiting"
	TaskStatusSomeday   TaskStatus = "someday"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusArchived  TaskStatus = "archived"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNext, TaskStatusWaiting, TaskStatusSomeday, TaskStatusCompleted, TaskStatusArchived:
		return true
	}
	return false
}

// Task represents an actionable GTD item
type Task struct {
	ID              uuid.UUID       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title           string          `json:"title" gorm:"not null;type:varchar(500)"`
	Description     *string         `json:"description"`
	Status          TaskStatus      `json:"status" gorm:"not null;type:varchar(20);default:'next'"`
	ScheduledDate   *datatypes.Date `json:"scheduled_date"`
	ScheduledTime   *datatypes.Time `json:"scheduled_time"`
	DueDate         *datatypes.Date `json:"due_date"`
	ProjectID       *uuid.UUID      `json:"project_id" gorm:"type:uuid"`
	BlockedByTaskID *uuid.UUID      `json:"blocked_by_task_id" gorm:"type:uuid"`
	CreatedAt       time.Time       `json:"created_at" gorm:"not null;default:now()"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"not null;default:now()"`
	CompletedAt     *time.Time      `json:"completed_at"`
	ArchivedAt      *time.Time      `json:"archived_at"`
	DeletedAt       *time.Time      `json:"-" gorm:"index"`

	// Maintained by the database; never written by application code.
	SearchVector string `json:"-" gorm:"->;-:migration;type:tsvector"`

	// Foreign Key Relations
	Project      *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	BlockingTask *Task    `json:"blocking_task,omitempty" gorm:"foreignKey:BlockedByTaskID;constraint:OnDelete:SET NULL"`

	// Many-to-Many Relations
	Contexts []*Context `json:"contexts,omitempty" gorm:"many2many:task_contexts"`
	Notes    []*Note    `json:"notes,omitempty" gorm:"many2many:note_task_links"`
}
