package models

import (
	"time"

	"github.com/google/uuid"
)

// Search result type tags.
const (
	SearchTypeTask    = "task"
	SearchTypeNote    = "note"
	SearchTypeProject = "project"
)

// SearchResult is the flat, tagged shape every searchable entity projects
// into. ProjectID is the owning project for tasks and notes; nil for
// project rows themselves.
type SearchResult struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Snippet   *string    `json:"snippet"`
	Rank      float64    `json:"rank"`
	CreatedAt time.Time  `json:"created_at"`
	ProjectID *uuid.UUID `json:"project_id"`
}

// SearchResponse is the payload returned by the search endpoint.
type SearchResponse struct {
	Query        string         `json:"query"`
	TotalResults int            `json:"total_results"`
	Results      []SearchResult `json:"results"`
}
