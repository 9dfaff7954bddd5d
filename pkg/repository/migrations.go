package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// searchField pairs a column with its full-text weight class (A highest, D
// lowest).
type searchField struct {
	Column string
	Weight string
}

// searchVectorDDL builds the statements that add a generated, weighted
// tsvector column and its GIN index to a table. The column is maintained
// entirely by Postgres; application code never writes it.
func searchVectorDDL(table string, fields []searchField, language string) (addColumn, createIndex string, err error) {
	if err := validateIdentifier(table); err != nil {
		return "", "", fmt.Errorf("invalid table name: %w", err)
	}
	if len(fields) == 0 {
		return "", "", fmt.Errorf("no search fields for table %s", table)
	}
	if !isAlpha(language) {
		return "", "", fmt.Errorf("invalid language %q", language)
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if err := validateIdentifier(f.Column); err != nil {
			return "", "", fmt.Errorf("invalid column name: %w", err)
		}
		switch f.Weight {
		case "A", "B", "C", "D":
		default:
			return "", "", fmt.Errorf("invalid weight %q for %s.%s", f.Weight, table, f.Column)
		}
		parts = append(parts, fmt.Sprintf(
			"setweight(to_tsvector('%s', coalesce(%s, '')), '%s')",
			language, f.Column, f.Weight,
		))
	}

	addColumn = fmt.Sprintf(
		"ALTER TABLE %s ADD COLUMN IF NOT EXISTS search_vector tsvector GENERATED ALWAYS AS (%s) STORED",
		table, strings.Join(parts, " || "),
	)
	createIndex = fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS idx_%s_search_vector ON %s USING GIN (search_vector)",
		table, table,
	)
	return addColumn, createIndex, nil
}

func validateIdentifier(ident string) error {
	if ident == "" {
		return fmt.Errorf("identifier is empty")
	}
	for _, r := range ident {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			continue
		}
		return fmt.Errorf("identifier %q contains invalid characters", ident)
	}
	return nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// applyDDL installs everything AutoMigrate cannot express: the partial
// unique index on live context names, the updated_at and project-activity
// trigger machinery, and the generated search vector columns.
func applyDDL(db *gorm.DB) error {
	statements := []string{
		// Context names are unique among live rows only; a soft-deleted
		// context frees its name for reuse.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_contexts_name_active
		 ON contexts (name) WHERE deleted_at IS NULL`,

		`CREATE OR REPLACE FUNCTION update_updated_at_column()
		 RETURNS TRIGGER AS $$
		 BEGIN
		     NEW.updated_at = NOW();
		     RETURN NEW;
		 END;
		 $$ LANGUAGE plpgsql`,

		`DROP TRIGGER IF EXISTS update_tasks_updated_at ON tasks`,
		`CREATE TRIGGER update_tasks_updated_at
		 BEFORE UPDATE ON tasks
		 FOR EACH ROW
		 EXECUTE FUNCTION update_updated_at_column()`,

		`DROP TRIGGER IF EXISTS update_projects_updated_at ON projects`,
		`CREATE TRIGGER update_projects_updated_at
		 BEFORE UPDATE ON projects
		 FOR EACH ROW
		 EXECUTE FUNCTION update_updated_at_column()`,

		`DROP TRIGGER IF EXISTS update_notes_updated_at ON notes`,
		`CREATE TRIGGER update_notes_updated_at
		 BEFORE UPDATE ON notes
		 FOR EACH ROW
		 EXECUTE FUNCTION update_updated_at_column()`,

		// last_activity_at must move whenever a child task row changes,
		// regardless of which code path touched it.
		`CREATE OR REPLACE FUNCTION update_project_last_activity()
		 RETURNS TRIGGER AS $$
		 BEGIN
		     IF TG_OP = 'DELETE' THEN
		         UPDATE projects SET last_activity_at = NOW() WHERE id = OLD.project_id;
		         RETURN OLD;
		     ELSE
		         UPDATE projects SET last_activity_at = NOW() WHERE id = NEW.project_id;
		         RETURN NEW;
		     END IF;
		 END;
		 $$ LANGUAGE plpgsql`,

		`DROP TRIGGER IF EXISTS task_activity_updates_project ON tasks`,
		`CREATE TRIGGER task_activity_updates_project
		 AFTER INSERT OR UPDATE OR DELETE ON tasks
		 FOR EACH ROW
		 EXECUTE FUNCTION update_project_last_activity()`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply schema DDL: %w", err)
		}
	}

	searchable := []struct {
		table  string
		fields []searchField
	}{
		{"tasks", []searchField{{"title", "A"}, {"description", "B"}}},
		{"notes", []searchField{{"title", "A"}, {"content", "B"}}},
		{"projects", []searchField{{"name", "A"}, {"outcome_statement", "B"}}},
	}

	for _, s := range searchable {
		addColumn, createIndex, err := searchVectorDDL(s.table, s.fields, "english")
		if err != nil {
			return err
		}
		if err := db.Exec(addColumn).Error; err != nil {
			return fmt.Errorf("failed to add search vector to %s: %w", s.table, err)
		}
		if err := db.Exec(createIndex).Error; err != nil {
			return fmt.Errorf("failed to index search vector on %s: %w", s.table, err)
		}
	}

	return nil
}

// seedDefaultContexts installs the stock GTD contexts on first run.
func seedDefaultContexts(db *gorm.DB) error {
	err := db.Exec(`
		INSERT INTO contexts (name, description, icon, sort_order) VALUES
		('@computer', 'Tasks requiring a computer', 'computer', 1),
		('@phone', 'Calls to make', 'phone', 2),
		('@home', 'Tasks to do at home', 'home', 3),
		('@office', 'Tasks to do at office', 'briefcase', 4),
		('@errands', 'Things to do while out', 'shopping-cart', 5),
		('@waiting', 'Waiting for someone else', 'clock', 6),
		('@anywhere', 'Can do from anywhere', 'globe', 7)
		ON CONFLICT (name) WHERE deleted_at IS NULL DO NOTHING
	`).Error
	if err != nil {
		return fmt.Errorf("failed to seed default contexts: %w", err)
	}
	return nil
}
