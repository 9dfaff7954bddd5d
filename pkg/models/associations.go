package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskContext is the Task-Context association row.
type TaskContext struct {
	TaskID    uuid.UUID `json:"task_id" gorm:"primaryKey;type:uuid"`
	ContextID uuid.UUID `json:"context_id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:now()"`
}

// TableName specifies the table name for GORM
func (TaskContext) TableName() string {
	return "task_contexts"
}

// NoteTaskLink is the Note-Task association row.
type NoteTaskLink struct {
	NoteID    uuid.UUID `json:"note_id" gorm:"primaryKey;type:uuid"`
	TaskID    uuid.UUID `json:"task_id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:now()"`
}

// TableName specifies the table name for GORM
func (NoteTaskLink) TableName() string {
	return "note_task_links"
}
