package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanSettle(t *testing.T) {
	assert.True(t, CanSettle(StatusPending, StatusWin))
	assert.True(t, CanSettle(StatusPending, StatusLose))

	// liquidação é monotônica: não desfaz nem re-liquida
	assert.False(t, CanSettle(StatusWin, StatusLose))
	assert.False(t, CanSettle(StatusLose, StatusWin))
	assert.False(t, CanSettle(StatusWin, StatusPending))
	assert.False(t, CanSettle(StatusPending, StatusPending))
	assert.False(t, CanSettle(StatusPending, "Push"))
}

func TestIsCompleted(t *testing.T) {
	assert.False(t, IsCompleted(StatusPending))
	assert.True(t, IsCompleted(StatusWin))
	assert.True(t, IsCompleted(StatusLose))
}
