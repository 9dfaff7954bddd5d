package controllers

import (
	"testing"

	apperrors "github.com/avivsarig/gtd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContextController() (*ContextController, *fakeContextRepo) {
	repo := newFakeContextRepo()
	return NewContextController(repo), repo
}

func TestContextCreateValidatesName(t *testing.T) {
	ctrl, _ := newContextController()

	for _, name := range []string{"home", "@Home", "@", "@deep work", "@café"} {
		_, err := ctrl.Create(ContextCreate{Name: name})
		assert.True(t, apperrors.IsValidation(err), "name %q should be rejected", name)
	}

	ctx, err := ctrl.Create(ContextCreate{Name: "@deep_work_2"})
	require.NoError(t, err)
	assert.Equal(t, "@deep_work_2", ctx.Name)
}

func TestContextCreateDuplicateName(t *testing.T) {
	ctrl, _ := newContextController()

	_, err := ctrl.Create(ContextCreate{Name: "@home"})
	require.NoError(t, err)

	_, err = ctrl.Create(ContextCreate{Name: "@home"})
	assert.True(t, apperrors.IsConflict(err))
}

func TestContextNameReusableAfterDelete(t *testing.T) {
	ctrl, _ := newContextController()

	original, err := ctrl.Create(ContextCreate{Name: "@errands"})
	require.NoError(t, err)
	require.NoError(t, ctrl.Delete(original.ID))

	// Soft-deleting frees the name.
	replacement, err := ctrl.Create(ContextCreate{Name: "@errands"})
	require.NoError(t, err)
	assert.NotEqual(t, original.ID, replacement.ID)
}

func TestContextUpdateNameConflicts(t *testing.T) {
	ctrl, _ := newContextController()

	home, err := ctrl.Create(ContextCreate{Name: "@home"})
	require.NoError(t, err)
	_, err = ctrl.Create(ContextCreate{Name: "@office"})
	require.NoError(t, err)

	// Renaming onto another live context's name conflicts.
	_, err = ctrl.Update(home.ID, ContextUpdate{
		Name: Optional[string]{Set: true, Value: "@office"},
	})
	assert.True(t, apperrors.IsConflict(err))

	// Renaming to its own current name is a no-op, not a conflict.
	updated, err := ctrl.Update(home.ID, ContextUpdate{
		Name: Optional[string]{Set: true, Value: "@home"},
	})
	require.NoError(t, err)
	assert.Equal(t, "@home", updated.Name)
}

func TestContextUpdatePatch(t *testing.T) {
	ctrl, _ := newContextController()

	ctx, err := ctrl.Create(ContextCreate{Name: "@calls", Description: ptr("phone calls"), SortOrder: 3})
	require.NoError(t, err)

	updated, err := ctrl.Update(ctx.ID, ContextUpdate{
		Description: Optional[*string]{Set: true, Value: nil},
		SortOrder:   Optional[int]{Set: true, Value: 7},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Equal(t, 7, updated.SortOrder)
	assert.Equal(t, "@calls", updated.Name)
}
