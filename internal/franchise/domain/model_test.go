package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageTransitions(t *testing.T) {
	assert.True(t, StageFunding.CanTransitionTo(StageLaunching))
	assert.True(t, StageFunding.CanTransitionTo(StageClosed))
	assert.True(t, StageLaunching.CanTransitionTo(StageOngoing))
	assert.True(t, StageLaunching.CanTransitionTo(StageClosed))
	assert.True(t, StageOngoing.CanTransitionTo(StageClosed))

	assert.False(t, StageFunding.CanTransitionTo(StageOngoing))
	assert.False(t, StageOngoing.CanTransitionTo(StageFunding))
	assert.False(t, StageClosed.CanTransitionTo(StageFunding))
	assert.False(t, StageClosed.CanTransitionTo(StageOngoing))
}

func TestParseStage(t *testing.T) {
	s, ok := ParseStage("funding")
	assert.True(t, ok)
	assert.Equal(t, StageFunding, s)

	_, ok = ParseStage("bankrupt")
	assert.False(t, ok)
}
