package controllers

import (
	"github.com/avivsarig/gtd/pkg/models"
)

const (
	// DefaultSearchLimit applies when the client does not ask for one.
	DefaultSearchLimit = 50
	// MaxSearchLimit caps how many results one query may return.
	MaxSearchLimit = 100
)

// SearchController runs ranked full-text queries. It is read-only and
// never errors on zero matches.
type SearchController struct {
	repo SearchRepository
}

// NewSearchController creates a search controller.
func NewSearchController(repo SearchRepository) *SearchController {
	return &SearchController{repo: repo}
}

// Search returns up to limit results for the query, most relevant first.
// Limits beyond MaxSearchLimit are clamped rather than rejected; values
// below 1 fall back to the default (the HTTP boundary rejects those before
// they reach here).
func (c *SearchController) Search(query string, limit int) (*models.SearchResponse, error) {
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	results, err := c.repo.SearchAll(query, limit)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	return &models.SearchResponse{
		Query:        query,
		TotalResults: len(results),
		Results:      results,
	}, nil
}
