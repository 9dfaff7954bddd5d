package controllers

import (
	"unicode/utf8"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
)

const maxNoteTitleLen = 200

// NoteCreate is the input for creating a note.
type NoteCreate struct {
	Title     string     `json:"title" binding:"required"`
	Content   *string    `json:"content"`
	ProjectID *uuid.UUID `json:"project_id"`
}

// NoteUpdate is a sparse patch for a note.
type NoteUpdate struct {
	Title     Optional[string]     `json:"title"`
	Content   Optional[*string]    `json:"content"`
	ProjectID Optional[*uuid.UUID] `json:"project_id"`
}

// NoteController handles note CRUD with soft-delete semantics.
type NoteController struct {
	repo NoteRepository
}

// NewNoteController creates a note controller.
func NewNoteController(repo NoteRepository) *NoteController {
	return &NoteController{repo: repo}
}

// List returns live notes, newest first, optionally filtered by project.
func (c *NoteController) List(projectID *uuid.UUID) ([]models.Note, error) {
	return c.repo.List(projectID)
}

// Get returns a single live note.
func (c *NoteController) Get(id uuid.UUID) (*models.Note, error) {
	note, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperrors.NotFound("note with id %s not found", id)
	}
	return note, nil
}

// Create validates the input and persists a new note.
func (c *NoteController) Create(input NoteCreate) (*models.Note, error) {
	if err := validateNoteTitle(input.Title); err != nil {
		return nil, err
	}

	note := &models.Note{
		Title:     input.Title,
		Content:   input.Content,
		ProjectID: input.ProjectID,
	}
	if err := c.repo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update applies a sparse patch to a note.
func (c *NoteController) Update(id uuid.UUID, input NoteUpdate) (*models.Note, error) {
	note, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperrors.NotFound("note with id %s not found", id)
	}

	fields := map[string]any{}
	if input.Title.Set {
		if err := validateNoteTitle(input.Title.Value); err != nil {
			return nil, err
		}
		fields["title"] = input.Title.Value
	}
	if input.Content.Set {
		fields["content"] = nullable(input.Content.Value)
	}
	if input.ProjectID.Set {
		fields["project_id"] = nullable(input.ProjectID.Value)
	}

	if err := c.repo.Update(note, fields); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete soft-deletes a note.
func (c *NoteController) Delete(id uuid.UUID) error {
	note, err := c.repo.GetByID(id)
	if err != nil {
		return err
	}
	if note == nil {
		return apperrors.NotFound("note with id %s not found", id)
	}
	return c.repo.SoftDelete(note)
}

func validateNoteTitle(title string) error {
	if title == "" {
		return apperrors.Validation("note title must not be empty")
	}
	if utf8.RuneCountInString(title) > maxNoteTitleLen {
		return apperrors.Validation("note title must be at most %d characters", maxNoteTitleLen)
	}
	return nil
}
