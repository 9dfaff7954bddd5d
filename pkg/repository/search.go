package repository

import (
	"fmt"

	"github.com/avivsarig/gtd/pkg/models"
	"gorm.io/gorm"
)

// snippetMaxLen caps the snippet column of a search result.
const snippetMaxLen = 500

// searchSQL matches each entity's weighted search vector against the parsed
// query, projects every match into one flat shape, and ranks the union.
// plainto_tsquery tokenizes, strips stopwords, and ANDs the remaining stems.
// Ordering among equal ranks is whatever Postgres yields; no secondary sort
// key is applied.
const searchSQL = `
SELECT id, 'task' AS type, title, description AS snippet,
       ts_rank(search_vector, plainto_tsquery('english', @query)) AS rank,
       created_at, project_id
FROM tasks
WHERE deleted_at IS NULL
  AND search_vector @@ plainto_tsquery('english', @query)
UNION ALL
SELECT id, 'note' AS type, title, content AS snippet,
       ts_rank(search_vector, plainto_tsquery('english', @query)) AS rank,
       created_at, project_id
FROM notes
WHERE deleted_at IS NULL
  AND search_vector @@ plainto_tsquery('english', @query)
UNION ALL
SELECT id, 'project' AS type, name AS title, outcome_statement AS snippet,
       ts_rank(search_vector, plainto_tsquery('english', @query)) AS rank,
       created_at, NULL::uuid AS project_id
FROM projects
WHERE deleted_at IS NULL
  AND search_vector @@ plainto_tsquery('english', @query)
ORDER BY rank DESC
LIMIT @limit
`

// SearchRepository runs ranked full-text queries across tasks, notes and
// projects. It is read-only.
type SearchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a search repository backed by db.
func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// SearchAll returns up to limit results matching query, most relevant first.
// Zero matches is not an error; the slice is simply empty.
func (r *SearchRepository) SearchAll(query string, limit int) ([]models.SearchResult, error) {
	var results []models.SearchResult
	err := r.db.Raw(searchSQL, map[string]any{
		"query": query,
		"limit": limit,
	}).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search for %q: %w", query, err)
	}

	for i := range results {
		results[i].Snippet = truncateSnippet(results[i].Snippet)
	}
	return results, nil
}

func truncateSnippet(snippet *string) *string {
	if snippet == nil {
		return nil
	}
	runes := []rune(*snippet)
	if len(runes) <= snippetMaxLen {
		return snippet
	}
	truncated := string(runes[:snippetMaxLen])
	return &truncated
}
