package handlers

import (
	"net/http"

	"github.com/avivsarig/gtd/pkg/controllers"
	"github.com/gin-gonic/gin"
)

// NoteHandler exposes note operations over HTTP.
type NoteHandler struct {
	notes *controllers.NoteController
}

// NewNoteHandler creates a note handler.
func NewNoteHandler(notes *controllers.NoteController) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// List returns notes, optionally filtered by ?project_id=.
func (h *NoteHandler) List(c *gin.Context) {
	projectID, ok := parseUUIDQuery(c, "project_id")
	if !ok {
		return
	}

	notes, err := h.notes.List(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// Get returns a single note.
func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.notes.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// Create creates a new note.
func (h *NoteHandler) Create(c *gin.Context) {
	var input controllers.NoteCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	note, err := h.notes.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// Update applies a partial update to a note.
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input controllers.NoteUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	note, err := h.notes.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// Delete soft-deletes a note.
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.notes.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
