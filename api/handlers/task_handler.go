package handlers

import (
	"net/http"
	"time"

	"github.com/avivsarig/gtd/pkg/controllers"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/avivsarig/gtd/pkg/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler exposes task operations over HTTP.
type TaskHandler struct {
	tasks *controllers.TaskController
}

// NewTaskHandler creates a task handler.
func NewTaskHandler(tasks *controllers.TaskController) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List returns tasks filtered by the query parameters, all ANDed together.
func (h *TaskHandler) List(c *gin.Context) {
	var filter repository.TaskFilter

	if raw := c.Query("status"); raw != "" {
		status := models.TaskStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid status filter"})
			return
		}
		filter.Status = &status
	}

	projectID, ok := parseUUIDQuery(c, "project_id")
	if !ok {
		return
	}
	filter.ProjectID = projectID

	contextID, ok := parseUUIDQuery(c, "context_id")
	if !ok {
		return
	}
	filter.ContextID = contextID

	after, ok := parseDateQuery(c, "scheduled_after")
	if !ok {
		return
	}
	filter.ScheduledAfter = after

	before, ok := parseDateQuery(c, "scheduled_before")
	if !ok {
		return
	}
	filter.ScheduledBefore = before

	tasks, err := h.tasks.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Get returns a single task.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create creates a new task.
func (h *TaskHandler) Create(c *gin.Context) {
	var input controllers.TaskCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	task, err := h.tasks.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update applies a partial update to a task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input controllers.TaskUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	task, err := h.tasks.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete soft-deletes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Complete marks a task completed.
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.tasks.Complete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Uncomplete clears a task's completion.
func (h *TaskHandler) Uncomplete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.tasks.Uncomplete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// BulkStatusInput is the request body for bulk status changes.
type BulkStatusInput struct {
	TaskIDs []uuid.UUID       `json:"task_ids" binding:"required,min=1"`
	Status  models.TaskStatus `json:"status" binding:"required"`
}

// BulkStatus sets the status of every resolvable task; ids that do not
// resolve are skipped, not errored.
func (h *TaskHandler) BulkStatus(c *gin.Context) {
	var input BulkStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	updated, err := h.tasks.BulkUpdateStatus(input.TaskIDs, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(updated))
	for _, task := range updated {
		ids = append(ids, task.ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"updated_count": len(updated),
		"task_ids":      ids,
	})
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
