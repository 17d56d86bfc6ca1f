package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusProcessing))
	assert.True(t, StatusProcessing.CanTransition(StatusCompleted))
	assert.True(t, StatusProcessing.CanTransition(StatusError))

	// no skipping ahead and no leaving a terminal state
	assert.False(t, StatusPending.CanTransition(StatusCompleted))
	assert.False(t, StatusCompleted.CanTransition(StatusProcessing))
	assert.False(t, StatusError.CanTransition(StatusProcessing))
	assert.False(t, StatusError.CanTransition(StatusCompleted))
}

func TestItemStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusError.Terminal())
}
