package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/avivsarig/gtd/pkg/controllers"
	"github.com/gin-gonic/gin"
)

// SearchHandler exposes ranked full-text search over HTTP.
type SearchHandler struct {
	search *controllers.SearchController
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(search *controllers.SearchController) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search runs a cross-entity query. Queries under 2 characters are
// rejected with 400; a limit below 1 with 422. Limits above the maximum
// are clamped, not rejected.
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search query must be at least 2 characters long"})
		return
	}

	limit := controllers.DefaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid limit, expected an integer"})
			return
		}
		if n < 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be at least 1"})
			return
		}
		limit = n
	}

	response, err := h.search.Search(query, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
