package handlers

import (
	"net/http"

	"github.com/avivsarig/gtd/pkg/controllers"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes project operations over HTTP.
type ProjectHandler struct {
	projects *controllers.ProjectController
}

// NewProjectHandler creates a project handler.
func NewProjectHandler(projects *controllers.ProjectController) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List returns projects, optionally filtered by status. With
// ?include_stats=true each project carries its task counts.
func (h *ProjectHandler) List(c *gin.Context) {
	var status *models.ProjectStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ProjectStatus(raw)
		if !s.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid status filter"})
			return
		}
		status = &s
	}

	if c.Query("include_stats") == "true" {
		projects, err := h.projects.ListWithStats(status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	projects, err := h.projects.List(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get returns a single project with its task counts.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.projects.GetWithStats(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create creates a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var input controllers.ProjectCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	project, err := h.projects.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update applies a partial update to a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input controllers.ProjectUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	project, err := h.projects.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete soft-deletes a project.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Complete marks a project completed.
func (h *ProjectHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.projects.Complete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
