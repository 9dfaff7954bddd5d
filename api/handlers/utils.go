package handlers

import (
	"net/http"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps an application error onto its HTTP status code.
// Anything outside the taxonomy is a 500 with a generic body; the logging
// middleware records the detail.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindingError reports a malformed request body.
func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

// parseIDParam reads the :id path parameter as a UUID. The second return
// is false when the response has already been written.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id, expected a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDQuery reads an optional UUID query parameter.
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid " + name + ", expected a UUID"})
		return nil, false
	}
	return &id, true
}
