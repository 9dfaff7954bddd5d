package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{TaskStatusNext, TaskStatusWaiting, TaskStatusSomeday, TaskStatusCompleted, TaskStatusArchived} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, TaskStatus("doing").Valid())
	assert.False(t, TaskStatus("").Valid())
}

func TestProjectStatusValid(t *testing.T) {
	for _, s := range []ProjectStatus{ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, ProjectStatus("paused").Valid())
}

func TestValidContextName(t *testing.T) {
	valid := []string{"@home", "@deep_work", "@calls_2", "@a"}
	for _, name := range valid {
		assert.True(t, ValidContextName(name), "%s should be valid", name)
	}

	invalid := []string{
		"home",
		"@Home",
		"@",
		"",
		"@deep work",
		"@deep-work",
		"@" + strings.Repeat("x", 50),
	}
	for _, name := range invalid {
		assert.False(t, ValidContextName(name), "%q should be invalid", name)
	}
}
