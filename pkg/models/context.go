package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// contextNamePattern matches GTD context names like @home or @deep_work.
var contextNamePattern = regexp.MustCompile(`^@[a-z0-9_]+$`)

// ValidContextName reports whether name is a well-formed context name.
func ValidContextName(name string) bool {
	return len(name) <= 50 && contextNamePattern.MatchString(name)
}

// Context represents a reusable tag (e.g. @home) for categorizing tasks.
// Name uniqueness is enforced among live rows only; soft-deleting a context
// frees its name for reuse.
type Context struct {
	ID          uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `json:"name" gorm:"not null;type:varchar(50)"`
	Description *string    `json:"description"`
	Icon        *string    `json:"icon" gorm:"type:varchar(50)"`
	SortOrder   int        `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null;default:now()"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"not null;default:now()"`
	DeletedAt   *time.Time `json:"-" gorm:"index"`

	// Many-to-Many Relations
	Tasks []*Task `json:"tasks,omitempty" gorm:"many2many:task_contexts"`
}
