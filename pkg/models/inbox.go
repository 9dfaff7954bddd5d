package models

import (
	"time"

	"github.com/google/uuid"
)

// InboxItem represents an unclassified GTD capture awaiting processing.
// It deliberately has no updated_at: captures are raw material, not
// maintained records.
type InboxItem struct {
	ID          uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Content     string     `json:"content" gorm:"not null"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null;default:now()"`
	ProcessedAt *time.Time `json:"processed_at"`
	DeletedAt   *time.Time `json:"-" gorm:"index"`
}

// TableName specifies the table name for GORM
func (InboxItem) TableName() string {
	return "inbox_items"
}
