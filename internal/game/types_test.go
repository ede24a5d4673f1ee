package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		guess  int
		secret int
		want   Outcome
	}{
		{name: "below", guess: 25, secret: 50, want: OutcomeLess},
		{name: "above", guess: 75, secret: 50, want: OutcomeGreater},
		{name: "exact", guess: 50, secret: 50, want: OutcomeEqual},
		{name: "just below", guess: 49, secret: 50, want: OutcomeLess},
		{name: "just above", guess: 51, secret: 50, want: OutcomeGreater},
		{name: "lower bound secret", guess: 1, secret: 1, want: OutcomeEqual},
		{name: "above upper bound compares greater", guess: 101, secret: 100, want: OutcomeGreater},
		{name: "zero guess against lower bound", guess: 0, secret: 1, want: OutcomeLess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.guess, tt.secret))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "less", OutcomeLess.String())
	assert.Equal(t, "greater", OutcomeGreater.String())
	assert.Equal(t, "equal", OutcomeEqual.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting_input", StateAwaitingInput.String())
	assert.Equal(t, "evaluating", StateEvaluating.String())
	assert.Equal(t, "won", StateWon.String())
	assert.Equal(t, "unknown", State(99).String())
}
