package handlers

import (
	"net/http/httptest"
	"strings"
	"time"

	"github.com/avivsarig/gtd/pkg/models"
	"github.com/avivsarig/gtd/pkg/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Minimal in-memory repositories, enough to drive the handlers through
// their controllers.

type memTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[uuid.UUID]*models.Task{}}
}

func (m *memTaskRepo) List(filter repository.TaskFilter) ([]models.Task, error) {
	out := []models.Task{}
	for _, t := range m.tasks {
		if t.DeletedAt != nil {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTaskRepo) GetByID(id uuid.UUID) (*models.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.DeletedAt != nil {
		return nil, nil
	}
	return t, nil
}

func (m *memTaskRepo) Create(task *models.Task) error {
	task.ID = uuid.New()
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt
	m.tasks[task.ID] = task
	return nil
}

func (m *memTaskRepo) Update(task *models.Task, fields map[string]any) error {
	for k, v := range fields {
		switch k {
		case "title":
			task.Title = v.(string)
		case "status":
			task.Status = v.(models.TaskStatus)
		case "description":
			task.Description = anyPtr[string](v)
		case "scheduled_date":
			task.ScheduledDate = anyPtr[datatypes.Date](v)
		case "scheduled_time":
			task.ScheduledTime = anyPtr[datatypes.Time](v)
		case "due_date":
			task.DueDate = anyPtr[datatypes.Date](v)
		case "project_id":
			task.ProjectID = anyPtr[uuid.UUID](v)
		case "blocked_by_task_id":
			task.BlockedByTaskID = anyPtr[uuid.UUID](v)
		case "completed_at":
			task.CompletedAt = anyPtr[time.Time](v)
		}
	}
	return nil
}

func (m *memTaskRepo) SoftDelete(task *models.Task) error {
	now := time.Now().UTC()
	task.DeletedAt = &now
	return nil
}

type memNoteRepo struct {
	notes map[uuid.UUID]*models.Note
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{notes: map[uuid.UUID]*models.Note{}}
}

func (m *memNoteRepo) List(projectID *uuid.UUID) ([]models.Note, error) {
	out := []models.Note{}
	for _, n := range m.notes {
		if n.DeletedAt == nil {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *memNoteRepo) GetByID(id uuid.UUID) (*models.Note, error) {
	n, ok := m.notes[id]
	if !ok || n.DeletedAt != nil {
		return nil, nil
	}
	return n, nil
}

func (m *memNoteRepo) Create(note *models.Note) error {
	note.ID = uuid.New()
	note.CreatedAt = time.Now().UTC()
	m.notes[note.ID] = note
	return nil
}

func (m *memNoteRepo) Update(note *models.Note, fields map[string]any) error { return nil }

func (m *memNoteRepo) SoftDelete(note *models.Note) error {
	now := time.Now().UTC()
	note.DeletedAt = &now
	return nil
}

type memProjectRepo struct {
	projects map[uuid.UUID]*models.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: map[uuid.UUID]*models.Project{}}
}

func (m *memProjectRepo) List(status *models.ProjectStatus) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range m.projects {
		if p.DeletedAt == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProjectRepo) GetByID(id uuid.UUID) (*models.Project, error) {
	p, ok := m.projects[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return p, nil
}

func (m *memProjectRepo) Create(project *models.Project) error {
	project.ID = uuid.New()
	project.CreatedAt = time.Now().UTC()
	m.projects[project.ID] = project
	return nil
}

func (m *memProjectRepo) Update(project *models.Project, fields map[string]any) error {
	for k, v := range fields {
		switch k {
		case "name":
			project.Name = v.(string)
		case "status":
			project.Status = v.(models.ProjectStatus)
		case "completed_at":
			project.CompletedAt = anyPtr[time.Time](v)
		case "last_activity_at":
			project.LastActivityAt = anyPtr[time.Time](v)
		}
	}
	return nil
}

func (m *memProjectRepo) SoftDelete(project *models.Project) error {
	now := time.Now().UTC()
	project.DeletedAt = &now
	return nil
}

func (m *memProjectRepo) TaskStats(projectID uuid.UUID) (*models.ProjectTaskStats, error) {
	return &models.ProjectTaskStats{}, nil
}

type memInboxRepo struct {
	items map[uuid.UUID]*models.InboxItem
}

func newMemInboxRepo() *memInboxRepo {
	return &memInboxRepo{items: map[uuid.UUID]*models.InboxItem{}}
}

func (m *memInboxRepo) List(includeProcessed bool) ([]models.InboxItem, error) {
	out := []models.InboxItem{}
	for _, item := range m.items {
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

func (m *memInboxRepo) GetByID(id uuid.UUID) (*models.InboxItem, error) {
	item, ok := m.items[id]
	if !ok || item.DeletedAt != nil {
		return nil, nil
	}
	return item, nil
}

func (m *memInboxRepo) Create(item *models.InboxItem) error {
	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()
	m.items[item.ID] = item
	return nil
}

func (m *memInboxRepo) UpdateContent(item *models.InboxItem, content string) error {
	item.Content = content
	return nil
}

func (m *memInboxRepo) MarkProcessed(item *models.InboxItem) error {
	now := time.Now().UTC()
	item.ProcessedAt = &now
	return nil
}

func (m *memInboxRepo) SoftDelete(item *models.InboxItem) error {
	now := time.Now().UTC()
	item.DeletedAt = &now
	return nil
}

func (m *memInboxRepo) CountUnprocessed() (int64, error) {
	var count int64
	for _, item := range m.items {
		if item.DeletedAt == nil && item.ProcessedAt == nil {
			count++
		}
	}
	return count, nil
}

type memSearchRepo struct {
	results   []models.SearchResult
	lastLimit int
}

func (m *memSearchRepo) SearchAll(query string, limit int) ([]models.SearchResult, error) {
	m.lastLimit = limit
	return m.results, nil
}

func anyPtr[T any](v any) *T {
	if v == nil {
		return nil
	}
	val := v.(T)
	return &val
}
