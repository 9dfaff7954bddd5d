package controllers

import (
	"strings"
	"testing"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteController() *NoteController {
	return NewNoteController(newFakeNoteRepo())
}

func TestNoteCreateAndGet(t *testing.T) {
	ctrl := newNoteController()
	projectID := uuid.New()

	note, err := ctrl.Create(NoteCreate{
		Title:     "Router settings",
		Content:   ptr("admin password is in the safe"),
		ProjectID: &projectID,
	})
	require.NoError(t, err)

	got, err := ctrl.Get(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Router settings", got.Title)
	require.NotNil(t, got.ProjectID)
	assert.Equal(t, projectID, *got.ProjectID)
}

func TestNoteTitleTooLong(t *testing.T) {
	ctrl := newNoteController()

	_, err := ctrl.Create(NoteCreate{Title: strings.Repeat("t", 201)})
	assert.True(t, apperrors.IsValidation(err))
}

func TestNoteUpdateClearsContent(t *testing.T) {
	ctrl := newNoteController()

	note, err := ctrl.Create(NoteCreate{Title: "n", Content: ptr("body")})
	require.NoError(t, err)

	updated, err := ctrl.Update(note.ID, NoteUpdate{
		Content: Optional[*string]{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Content)
	assert.Equal(t, "n", updated.Title)
}

func TestNoteDeleteThenNotFound(t *testing.T) {
	ctrl := newNoteController()

	note, err := ctrl.Create(NoteCreate{Title: "gone"})
	require.NoError(t, err)
	require.NoError(t, ctrl.Delete(note.ID))

	_, err = ctrl.Get(note.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
