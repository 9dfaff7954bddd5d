package controllers

import (
	"strings"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
)

const (
	// Derived note titles are capped at the first line, 50 characters.
	noteTitleFromContentLen = 50
	// Derived project names take the leading 200 characters of the capture.
	projectNameFromContentLen = 200
)

// InboxItemCreate is the input for capturing a thought.
type InboxItemCreate struct {
	Content string `json:"content" binding:"required"`
}

// InboxItemUpdate replaces a capture's content.
type InboxItemUpdate struct {
	Content string `json:"content" binding:"required"`
}

// ConvertToTaskRequest carries optional overrides for inbox-to-task
// conversion; missing fields are derived from the capture itself.
type ConvertToTaskRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	ProjectID     *uuid.UUID `json:"project_id"`
	ScheduledDate *string    `json:"scheduled_date"`
}

// ConvertToNoteRequest carries optional overrides for inbox-to-note
// conversion.
type ConvertToNoteRequest struct {
	Title     *string    `json:"title"`
	Content   *string    `json:"content"`
	ProjectID *uuid.UUID `json:"project_id"`
}

// ConvertToProjectRequest carries optional overrides for inbox-to-project
// conversion.
type ConvertToProjectRequest struct {
	Name             *string `json:"name"`
	OutcomeStatement *string `json:"outcome_statement"`
}

// InboxController implements the GTD clarification workflow: captures come
// in unclassified and leave as exactly one of task, note, or project.
//
// An item is marked processed only after the derived entity was created; a
// failed conversion leaves it untouched. Converting an already processed
// item again is permitted and simply restamps processed_at.
type InboxController struct {
	repo     InboxRepository
	tasks    *TaskController
	notes    *NoteController
	projects *ProjectController
}

// NewInboxController creates an inbox controller. Conversions delegate to
// the entity controllers so their lifecycle rules apply unchanged.
func NewInboxController(repo InboxRepository, tasks *TaskController, notes *NoteController, projects *ProjectController) *InboxController {
	return &InboxController{repo: repo, tasks: tasks, notes: notes, projects: projects}
}

// List returns live captures oldest first. Processed items are hidden
// unless includeProcessed is set.
func (c *InboxController) List(includeProcessed bool) ([]models.InboxItem, error) {
	return c.repo.List(includeProcessed)
}

// Get returns a single live capture.
func (c *InboxController) Get(id uuid.UUID) (*models.InboxItem, error) {
	item, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("inbox item with id %s not found", id)
	}
	return item, nil
}

// Create captures a raw thought. No classification happens here.
func (c *InboxController) Create(input InboxItemCreate) (*models.InboxItem, error) {
	if input.Content == "" {
		return nil, apperrors.Validation("inbox item content must not be empty")
	}

	item := &models.InboxItem{Content: input.Content}
	if err := c.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces a capture's content without touching processed state.
func (c *InboxController) Update(id uuid.UUID, input InboxItemUpdate) (*models.InboxItem, error) {
	if input.Content == "" {
		return nil, apperrors.Validation("inbox item content must not be empty")
	}

	item, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	if err := c.repo.UpdateContent(item, input.Content); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete soft-deletes a capture, processed or not.
func (c *InboxController) Delete(id uuid.UUID) error {
	item, err := c.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperrors.NotFound("inbox item with id %s not found", id)
	}
	return c.repo.SoftDelete(item)
}

// CountUnprocessed counts captures still awaiting processing.
func (c *InboxController) CountUnprocessed() (int64, error) {
	return c.repo.CountUnprocessed()
}

// ConvertToTask turns a capture into a task. The task title is the override
// or the raw capture content, unmodified whatever its length.
func (c *InboxController) ConvertToTask(id uuid.UUID, req ConvertToTaskRequest) (*models.Task, error) {
	item, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	title := item.Content
	if req.Title != nil {
		title = *req.Title
	}

	task, err := c.tasks.Create(TaskCreate{
		Title:         title,
		Description:   req.Description,
		ProjectID:     req.ProjectID,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		return nil, err
	}

	if err := c.repo.MarkProcessed(item); err != nil {
		return nil, err
	}
	return task, nil
}

// ConvertToNote turns a capture into a note. Without an override the title
// is the capture's first line, capped at 50 characters; the note content is
// the full capture.
func (c *InboxController) ConvertToNote(id uuid.UUID, req ConvertToNoteRequest) (*models.Note, error) {
	item, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	title := noteTitleFromContent(item.Content)
	if req.Title != nil {
		title = *req.Title
	}
	content := item.Content
	if req.Content != nil {
		content = *req.Content
	}

	note, err := c.notes.Create(NoteCreate{
		Title:     title,
		Content:   &content,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		return nil, err
	}

	if err := c.repo.MarkProcessed(item); err != nil {
		return nil, err
	}
	return note, nil
}

// ConvertToProject turns a capture into a project. Without an override the
// name is the leading 200 characters of the capture.
func (c *InboxController) ConvertToProject(id uuid.UUID, req ConvertToProjectRequest) (*models.Project, error) {
	item, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	name := truncateRunes(item.Content, projectNameFromContentLen)
	if req.Name != nil {
		name = *req.Name
	}

	project, err := c.projects.Create(ProjectCreate{
		Name:             name,
		OutcomeStatement: req.OutcomeStatement,
	})
	if err != nil {
		return nil, err
	}

	if err := c.repo.MarkProcessed(item); err != nil {
		return nil, err
	}
	return project, nil
}

// noteTitleFromContent derives a note title: everything before the first
// newline, capped at 50 characters.
func noteTitleFromContent(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	return truncateRunes(line, noteTitleFromContentLen)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
