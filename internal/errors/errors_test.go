package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("task %d missing", 7)))
	assert.True(t, IsValidation(Validation("bad input")))
	assert.True(t, IsConflict(Conflict("duplicate")))

	assert.False(t, IsNotFound(Validation("bad input")))
	assert.False(t, IsNotFound(stderrors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NotFound("gone"))
	assert.True(t, IsNotFound(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(Validation("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal("boom", stderrors.New("db down"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("plain")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "task 7 not found", NotFound("task %d not found", 7).Error())

	cause := stderrors.New("connection refused")
	err := Internal("query failed", cause)
	assert.Equal(t, "query failed: connection refused", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}
