package controllers

import (
	"time"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/avivsarig/gtd/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// In-memory repository fakes. They mirror the gorm implementations'
// contract: nil entity with nil error for missing or soft-deleted rows,
// and Update applies a sparse column map to the entity in place.

func asPtr[T any](v any) *T {
	if v == nil {
		return nil
	}
	val := v.(T)
	return &val
}

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[uuid.UUID]*models.Task{}}
}

func (f *fakeTaskRepo) List(filter repository.TaskFilter) ([]models.Task, error) {
	var out []models.Task
	for _, t := range f.tasks {
		if t.DeletedAt != nil {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *filter.ProjectID) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTaskRepo) GetByID(id uuid.UUID) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok || t.DeletedAt != nil {
		return nil, nil
	}
	return t, nil
}

func (f *fakeTaskRepo) Create(task *models.Task) error {
	now := time.Now().UTC()
	task.ID = uuid.New()
	task.CreatedAt = now
	task.UpdatedAt = now
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) Update(task *models.Task, fields map[string]any) error {
	for k, v := range fields {
		switch k {
		case "title":
			task.Title = v.(string)
		case "description":
			task.Description = asPtr[string](v)
		case "status":
			task.Status = v.(models.TaskStatus)
		case "scheduled_date":
			task.ScheduledDate = asPtr[datatypes.Date](v)
		case "scheduled_time":
			task.ScheduledTime = asPtr[datatypes.Time](v)
		case "due_date":
			task.DueDate = asPtr[datatypes.Date](v)
		case "project_id":
			task.ProjectID = asPtr[uuid.UUID](v)
		case "blocked_by_task_id":
			task.BlockedByTaskID = asPtr[uuid.UUID](v)
		case "completed_at":
			task.CompletedAt = asPtr[time.Time](v)
		}
	}
	task.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeTaskRepo) SoftDelete(task *models.Task) error {
	task.DeletedAt = ptr(time.Now().UTC())
	return nil
}

type fakeProjectRepo struct {
	projects map[uuid.UUID]*models.Project
	stats    map[uuid.UUID]models.ProjectTaskStats
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: map[uuid.UUID]*models.Project{},
		stats:    map[uuid.UUID]models.ProjectTaskStats{},
	}
}

func (f *fakeProjectRepo) List(status *models.ProjectStatus) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		if p.DeletedAt != nil {
			continue
		}
		if status != nil && p.Status != *status {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProjectRepo) GetByID(id uuid.UUID) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProjectRepo) Create(project *models.Project) error {
	now := time.Now().UTC()
	project.ID = uuid.New()
	project.CreatedAt = now
	project.UpdatedAt = now
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) Update(project *models.Project, fields map[string]any) error {
	for k, v := range fields {
		switch k {
		case "name":
			project.Name = v.(string)
		case "outcome_statement":
			project.OutcomeStatement = asPtr[string](v)
		case "status":
			project.Status = v.(models.ProjectStatus)
		case "parent_project_id":
			project.ParentProjectID = asPtr[uuid.UUID](v)
		case "completed_at":
			project.CompletedAt = asPtr[time.Time](v)
		case "last_activity_at":
			project.LastActivityAt = asPtr[time.Time](v)
		}
	}
	project.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeProjectRepo) SoftDelete(project *models.Project) error {
	project.DeletedAt = ptr(time.Now().UTC())
	return nil
}

func (f *fakeProjectRepo) TaskStats(projectID uuid.UUID) (*models.ProjectTaskStats, error) {
	stats := f.stats[projectID]
	return &stats, nil
}

type fakeNoteRepo struct {
	notes map[uuid.UUID]*models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[uuid.UUID]*models.Note{}}
}

func (f *fakeNoteRepo) List(projectID *uuid.UUID) ([]models.Note, error) {
	var out []models.Note
	for _, n := range f.notes {
		if n.DeletedAt != nil {
			continue
		}
		if projectID != nil && (n.ProjectID == nil || *n.ProjectID != *projectID) {
			continue
		}
		out = append(out, *n)
	}
	return out, nil
}

func (f *fakeNoteRepo) GetByID(id uuid.UUID) (*models.Note, error) {
	n, ok := f.notes[id]
	if !ok || n.DeletedAt != nil {
		return nil, nil
	}
	return n, nil
}

func (f *fakeNoteRepo) Create(note *models.Note) error {
	now := time.Now().UTC()
	note.ID = uuid.New()
	note.CreatedAt = now
	note.UpdatedAt = now
	f.notes[note.ID] = note
	return nil
}

func (f *fakeNoteRepo) Update(note *models.Note, fields map[string]any) error {
	for k, v := range fields {
		switch k {
		case "title":
			note.Title = v.(string)
		case "content":
			note.Content = asPtr[string](v)
		case "project_id":
			note.ProjectID = asPtr[uuid.UUID](v)
		}
	}
	note.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeNoteRepo) SoftDelete(note *models.Note) error {
	note.DeletedAt = ptr(time.Now().UTC())
	return nil
}

type fakeContextRepo struct {
	contexts map[uuid.UUID]*models.Context
}

func newFakeContextRepo() *fakeContextRepo {
	return &fakeContextRepo{contexts: map[uuid.UUID]*models.Context{}}
}

func (f *fakeContextRepo) List() ([]models.Context, error) {
	var out []models.Context
	for _, ctx := range f.contexts {
		if ctx.DeletedAt == nil {
			out = append(out, *ctx)
		}
	}
	return out, nil
}

func (f *fakeContextRepo) GetByID(id uuid.UUID) (*models.Context, error) {
	ctx, ok := f.contexts[id]
	if !ok || ctx.DeletedAt != nil {
		return nil, nil
	}
	return ctx, nil
}

func (f *fakeContextRepo) GetByName(name string) (*models.Context, error) {
	for _, ctx := range f.contexts {
		if ctx.DeletedAt == nil && ctx.Name == name {
			return ctx, nil
		}
	}
	return nil, nil
}

func (f *fakeContextRepo) Create(ctx *models.Context) error {
	// Mirrors the partial unique index on live names.
	existing, _ := f.GetByName(ctx.Name)
	if existing != nil {
		return apperrors.Conflict("context with name %q already exists", ctx.Name)
	}
	now := time.Now().UTC()
	ctx.ID = uuid.New()
	ctx.CreatedAt = now
	ctx.UpdatedAt = now
	f.contexts[ctx.ID] = ctx
	return nil
}

func (f *fakeContextRepo) Update(ctx *models.Context, fields map[string]any) error {
	for k, v := range fields {
		switch k {
		case "name":
			ctx.Name = v.(string)
		case "description":
			ctx.Description = asPtr[string](v)
		case "icon":
			ctx.Icon = asPtr[string](v)
		case "sort_order":
			ctx.SortOrder = v.(int)
		}
	}
	ctx.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeContextRepo) SoftDelete(ctx *models.Context) error {
	ctx.DeletedAt = ptr(time.Now().UTC())
	return nil
}

type fakeInboxRepo struct {
	items map[uuid.UUID]*models.InboxItem
}

func newFakeInboxRepo() *fakeInboxRepo {
	return &fakeInboxRepo{items: map[uuid.UUID]*models.InboxItem{}}
}

func (f *fakeInboxRepo) List(includeProcessed bool) ([]models.InboxItem, error) {
	var out []models.InboxItem
	for _, item := range f.items {
		if item.DeletedAt != nil {
			continue
		}
		if !includeProcessed && item.ProcessedAt != nil {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeInboxRepo) GetByID(id uuid.UUID) (*models.InboxItem, error) {
	item, ok := f.items[id]
	if !ok || item.DeletedAt != nil {
		return nil, nil
	}
	return item, nil
}

func (f *fakeInboxRepo) Create(item *models.InboxItem) error {
	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()
	f.items[item.ID] = item
	return nil
}

func (f *fakeInboxRepo) UpdateContent(item *models.InboxItem, content string) error {
	item.Content = content
	return nil
}

func (f *fakeInboxRepo) MarkProcessed(item *models.InboxItem) error {
	item.ProcessedAt = ptr(time.Now().UTC())
	return nil
}

func (f *fakeInboxRepo) SoftDelete(item *models.InboxItem) error {
	item.DeletedAt = ptr(time.Now().UTC())
	return nil
}

func (f *fakeInboxRepo) CountUnprocessed() (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.DeletedAt == nil && item.ProcessedAt == nil {
			count++
		}
	}
	return count, nil
}

type fakeSearchRepo struct {
	results   []models.SearchResult
	lastQuery string
	lastLimit int
}

func (f *fakeSearchRepo) SearchAll(query string, limit int) ([]models.SearchResult, error) {
	f.lastQuery = query
	f.lastLimit = limit
	return f.results, nil
}
