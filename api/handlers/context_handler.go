package handlers

import (
	"net/http"

	"github.com/avivsarig/gtd/pkg/controllers"
	"github.com/gin-gonic/gin"
)

// ContextHandler exposes context operations over HTTP.
type ContextHandler struct {
	contexts *controllers.ContextController
}

// NewContextHandler creates a context handler.
func NewContextHandler(contexts *controllers.ContextController) *ContextHandler {
	return &ContextHandler{contexts: contexts}
}

// List returns all live contexts in display order.
func (h *ContextHandler) List(c *gin.Context) {
	contexts, err := h.contexts.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contexts)
}

// Get returns a single context.
func (h *ContextHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, err := h.contexts.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctx)
}

// Create creates a new context. Duplicate live names are rejected with 409.
func (h *ContextHandler) Create(c *gin.Context) {
	var input controllers.ContextCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	ctx, err := h.contexts.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ctx)
}

// Update applies a partial update to a context.
func (h *ContextHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input controllers.ContextUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	ctx, err := h.contexts.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ctx)
}

// Delete soft-deletes a context, freeing its name for reuse.
func (h *ContextHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.contexts.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
