package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteRepository is the data access layer for notes.
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a note repository backed by db.
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// List returns all live notes, newest first, optionally filtered by project.
func (r *NoteRepository) List(projectID *uuid.UUID) ([]models.Note, error) {
	query := r.db.Model(&models.Note{}).Where("deleted_at IS NULL")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var notes []models.Note
	if err := query.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetByID returns the live note with the given id, or nil if it does not
// exist or has been soft-deleted.
func (r *NoteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note %s: %w", id, err)
	}
	return &note, nil
}

// Create inserts a new note and reloads it so server-assigned values are
// populated.
func (r *NoteRepository) Create(note *models.Note) error {
	if err := r.db.Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return r.reload(note)
}

// Update applies the given column values to the note and reloads it.
func (r *NoteRepository) Update(note *models.Note, fields map[string]any) error {
	if len(fields) > 0 {
		if err := r.db.Model(note).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to update note %s: %w", note.ID, err)
		}
	}
	return r.reload(note)
}

// SoftDelete tombstones the note.
func (r *NoteRepository) SoftDelete(note *models.Note) error {
	now := time.Now().UTC()
	if err := r.db.Model(note).Update("deleted_at", now).Error; err != nil {
		return fmt.Errorf("failed to delete note %s: %w", note.ID, err)
	}
	note.DeletedAt = &now
	return nil
}

func (r *NoteRepository) reload(note *models.Note) error {
	if err := r.db.First(note, "id = ?", note.ID).Error; err != nil {
		return fmt.Errorf("failed to reload note %s: %w", note.ID, err)
	}
	return nil
}
