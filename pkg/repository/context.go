package repository

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContextRepository is the data access layer for contexts.
type ContextRepository struct {
	db *gorm.DB
}

// NewContextRepository creates a context repository backed by db.
func NewContextRepository(db *gorm.DB) *ContextRepository {
	return &ContextRepository{db: db}
}

// List returns all live contexts in display order (sort_order, then name).
func (r *ContextRepository) List() ([]models.Context, error) {
	var contexts []models.Context
	err := r.db.Where("deleted_at IS NULL").
		Order("sort_order ASC, name ASC").
		Find(&contexts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contexts: %w", err)
	}
	return contexts, nil
}

// GetByID returns the live context with the given id, or nil if it does not
// exist or has been soft-deleted.
func (r *ContextRepository) GetByID(id uuid.UUID) (*models.Context, error) {
	var ctx models.Context
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&ctx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get context %s: %w", id, err)
	}
	return &ctx, nil
}

// GetByName returns the live context with the given name, or nil if no live
// context carries it. Soft-deleted contexts do not count; their names are
// free for reuse.
func (r *ContextRepository) GetByName(name string) (*models.Context, error) {
	var ctx models.Context
	err := r.db.Where("name = ? AND deleted_at IS NULL", name).First(&ctx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get context by name %q: %w", name, err)
	}
	return &ctx, nil
}

// Create inserts a new context. A race that slips past the controller's
// pre-check is caught here by the partial unique index and surfaced as a
// Conflict.
func (r *ContextRepository) Create(ctx *models.Context) error {
	if err := r.db.Create(ctx).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("context with name %q already exists", ctx.Name)
		}
		return fmt.Errorf("failed to create context: %w", err)
	}
	return r.reload(ctx)
}

// Update applies the given column values to the context and reloads it.
func (r *ContextRepository) Update(ctx *models.Context, fields map[string]any) error {
	if len(fields) > 0 {
		if err := r.db.Model(ctx).Updates(fields).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("context with name %q already exists", ctx.Name)
			}
			return fmt.Errorf("failed to update context %s: %w", ctx.ID, err)
		}
	}
	return r.reload(ctx)
}

// SoftDelete tombstones the context and frees its name for reuse. Task
// associations are left in place for potential restoration.
func (r *ContextRepository) SoftDelete(ctx *models.Context) error {
	now := time.Now().UTC()
	if err := r.db.Model(ctx).Update("deleted_at", now).Error; err != nil {
		return fmt.Errorf("failed to delete context %s: %w", ctx.ID, err)
	}
	ctx.DeletedAt = &now
	return nil
}

func (r *ContextRepository) reload(ctx *models.Context) error {
	if err := r.db.First(ctx, "id = ?", ctx.ID).Error; err != nil {
		return fmt.Errorf("failed to reload context %s: %w", ctx.ID, err)
	}
	return nil
}
