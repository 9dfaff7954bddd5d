package controllers

import (
	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/avivsarig/gtd/pkg/models"
	"github.com/google/uuid"
)

// ContextCreate is the input for creating a context.
type ContextCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	SortOrder   int     `json:"sort_order"`
}

// ContextUpdate is a sparse patch for a context.
type ContextUpdate struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[*string] `json:"description"`
	Icon        Optional[*string] `json:"icon"`
	SortOrder   Optional[int]     `json:"sort_order"`
}

// ContextController enforces the unique-live-name policy on top of a
// ContextRepository. The pre-check read catches ordinary duplicates; the
// partial unique index in the store settles races.
type ContextController struct {
	repo ContextRepository
}

// NewContextController creates a context controller.
func NewContextController(repo ContextRepository) *ContextController {
	return &ContextController{repo: repo}
}

// List returns live contexts in display order.
func (c *ContextController) List() ([]models.Context, error) {
	return c.repo.List()
}

// Get returns a single live context.
func (c *ContextController) Get(id uuid.UUID) (*models.Context, error) {
	ctx, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		return nil, apperrors.NotFound("context with id %s not found", id)
	}
	return ctx, nil
}

// Create validates the input, rejects duplicate live names, and persists a
// new context.
func (c *ContextController) Create(input ContextCreate) (*models.Context, error) {
	if !models.ValidContextName(input.Name) {
		return nil, apperrors.Validation(
			"context name %q must match @lowercase_name and be at most 50 characters", input.Name)
	}

	existing, err := c.repo.GetByName(input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("context with name %q already exists", input.Name)
	}

	ctx := &models.Context{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		SortOrder:   input.SortOrder,
	}
	if err := c.repo.Create(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Update applies a sparse patch to a context. A name change is checked
// against every other live context.
func (c *ContextController) Update(id uuid.UUID, input ContextUpdate) (*models.Context, error) {
	ctx, err := c.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		return nil, apperrors.NotFound("context with id %s not found", id)
	}

	fields := map[string]any{}
	if input.Name.Set {
		if !models.ValidContextName(input.Name.Value) {
			return nil, apperrors.Validation(
				"context name %q must match @lowercase_name and be at most 50 characters", input.Name.Value)
		}
		existing, err := c.repo.GetByName(input.Name.Value)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != ctx.ID {
			return nil, apperrors.Conflict("context with name %q already exists", input.Name.Value)
		}
		fields["name"] = input.Name.Value
	}
	if input.Description.Set {
		fields["description"] = nullable(input.Description.Value)
	}
	if input.Icon.Set {
		fields["icon"] = nullable(input.Icon.Value)
	}
	if input.SortOrder.Set {
		fields["sort_order"] = input.SortOrder.Value
	}

	if err := c.repo.Update(ctx, fields); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Delete soft-deletes a context, freeing its name for reuse. Task
// associations survive for potential restoration.
func (c *ContextController) Delete(id uuid.UUID) error {
	ctx, err := c.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ctx == nil {
		return apperrors.NotFound("context with id %s not found", id)
	}
	return c.repo.SoftDelete(ctx)
}
