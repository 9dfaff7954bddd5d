package handlers

import (
	"net/http"

	"github.com/avivsarig/gtd/pkg/controllers"
	"github.com/gin-gonic/gin"
)

// InboxHandler exposes the capture and clarification workflow over HTTP.
type InboxHandler struct {
	inbox *controllers.InboxController
}

// NewInboxHandler creates an inbox handler.
func NewInboxHandler(inbox *controllers.InboxController) *InboxHandler {
	return &InboxHandler{inbox: inbox}
}

// List returns unprocessed captures oldest first.
// ?include_processed=true widens the listing.
func (h *InboxHandler) List(c *gin.Context) {
	items, err := h.inbox.List(c.Query("include_processed") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Count returns the number of captures awaiting processing.
func (h *InboxHandler) Count(c *gin.Context) {
	count, err := h.inbox.CountUnprocessed()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Get returns a single capture.
func (h *InboxHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.inbox.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create captures a raw thought.
func (h *InboxHandler) Create(c *gin.Context) {
	var input controllers.InboxItemCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	item, err := h.inbox.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update replaces a capture's content.
func (h *InboxHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input controllers.InboxItemUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	item, err := h.inbox.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete soft-deletes a capture.
func (h *InboxHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.inbox.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConvertToTask turns a capture into a task. The body is optional; missing
// fields are derived from the capture.
func (h *InboxHandler) ConvertToTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req controllers.ConvertToTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindingError(c, err)
		return
	}

	task, err := h.inbox.ConvertToTask(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ConvertToNote turns a capture into a note.
func (h *InboxHandler) ConvertToNote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req controllers.ConvertToNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindingError(c, err)
		return
	}

	note, err := h.inbox.ConvertToNote(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// ConvertToProject turns a capture into a project.
func (h *InboxHandler) ConvertToProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req controllers.ConvertToProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindingError(c, err)
		return
	}

	project, err := h.inbox.ConvertToProject(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}
