package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusRegistered.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusRegistered))
	assert.False(t, StatusRegistered.CanTransitionTo(StatusPending))
	assert.False(t, StatusPending.CanTransitionTo(StatusPending))
	assert.False(t, StatusRegistered.CanTransitionTo(StatusRegistered))
}

func TestApplyApproval(t *testing.T) {
	assignee := int64(11)

	t.Run("records assignee and terminal status", func(t *testing.T) {
		reg := &Registration{Status: StatusPending}
		reg.ApplyApproval(&assignee)
		assert.Equal(t, StatusRegistered, reg.Status)
		assert.Equal(t, int64(11), *reg.AssignedTo)
	})

	t.Run("nil assignee clears a previous assignment", func(t *testing.T) {
		reg := &Registration{Status: StatusPending, AssignedTo: &assignee}
		reg.ApplyApproval(nil)
		assert.Equal(t, StatusRegistered, reg.Status)
		assert.Nil(t, reg.AssignedTo)
	})
}

func TestApplyAssignment(t *testing.T) {
	reg := &Registration{Status: StatusPending}
	reg.ApplyAssignment(11)

	assert.Equal(t, int64(11), *reg.AssignedTo)
	assert.True(t, reg.AdminAssigned)
	assert.Equal(t, StatusRegistered, reg.Status)
}
