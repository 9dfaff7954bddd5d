package models

import (
	"time"

	"github.com/google/uuid"
)

// Note represents reference material, optionally linked to a project and tasks
type Note struct {
	ID        uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string     `json:"title" gorm:"not null;type:varchar(200)"`
	Content   *string    `json:"content"`
	ProjectID *uuid.UUID `json:"project_id" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null;default:now()"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"not null;default:now()"`
	DeletedAt *time.Time `json:"-" gorm:"index"`

	// Maintained by the database; never written by application code.
	SearchVector string `json:"-" gorm:"->;-:migration;type:tsvector"`

	// Foreign Key Relations
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`

	// Many-to-Many Relations
	Tasks []*Task `json:"tasks,omitempty" gorm:"many2many:note_task_links"`
}
