package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentAndNull(t *testing.T) {
	var patch struct {
		Title       Optional[string]  `json:"title"`
		Description Optional[*string] `json:"description"`
		Count       Optional[int]     `json:"count"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"description": null, "count": 3}`), &patch))

	assert.False(t, patch.Title.Set)

	assert.True(t, patch.Description.Set)
	assert.Nil(t, patch.Description.Value)

	assert.True(t, patch.Count.Set)
	assert.Equal(t, 3, patch.Count.Value)
}

func TestOptionalCarriesValues(t *testing.T) {
	var patch struct {
		Description Optional[*string] `json:"description"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"description": "hello"}`), &patch))
	require.True(t, patch.Description.Set)
	require.NotNil(t, patch.Description.Value)
	assert.Equal(t, "hello", *patch.Description.Value)
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable[string](nil))
	assert.Equal(t, "x", nullable(ptr("x")))
}
