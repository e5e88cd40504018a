package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationForwardTransitions(t *testing.T) {
	assert.True(t, CanTransitionApplication("suggested", "institute_approved"))
	assert.True(t, CanTransitionApplication("institute_approved", "admin_approved"))
	assert.True(t, CanTransitionApplication("admin_approved", "active"))
	assert.True(t, CanTransitionApplication("active", "completed"))
}

func TestApplicationCannotSkipStages(t *testing.T) {
	assert.False(t, CanTransitionApplication("suggested", "admin_approved"))
	assert.False(t, CanTransitionApplication("suggested", "active"))
	assert.False(t, CanTransitionApplication("institute_approved", "completed"))
}

func TestApplicationCannotMoveBackwards(t *testing.T) {
	assert.False(t, CanTransitionApplication("admin_approved", "institute_approved"))
	assert.False(t, CanTransitionApplication("active", "suggested"))
}

func TestApplicationRejectionReachability(t *testing.T) {
	for _, from := range []string{"suggested", "institute_approved", "admin_approved", "active"} {
		assert.True(t, CanTransitionApplication(from, "rejected"), "rejected should be reachable from %s", from)
	}

	// terminal states stay terminal
	assert.False(t, CanTransitionApplication("completed", "rejected"))
	assert.False(t, CanTransitionApplication("rejected", "rejected"))
	assert.False(t, CanTransitionApplication("rejected", "institute_approved"))
	assert.False(t, CanTransitionApplication("completed", "active"))
}
