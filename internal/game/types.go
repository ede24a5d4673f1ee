// Package game implements the guessing game core: a secret drawn once per
// game, a read-parse-compare loop over line input, and the three-way
// ordering outcome that drives feedback and termination.
package game

// Secret bounds. The range is fixed; it is not configurable.
const (
	SecretMin = 1
	SecretMax = 100
)

// Outcome is the result of comparing a guess to the secret.
type Outcome int

const (
	OutcomeLess    Outcome = iota // guess below the secret
	OutcomeGreater                // guess above the secret
	OutcomeEqual                  // guess matches, game over
)

// String returns a human-readable description of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeLess:
		return "less"
	case OutcomeGreater:
		return "greater"
	case OutcomeEqual:
		return "equal"
	default:
		return "unknown"
	}
}

// Compare orders guess against secret using standard integer ordering.
func Compare(guess, secret int) Outcome {
	switch {
	case guess < secret:
		return OutcomeLess
	case guess > secret:
		return OutcomeGreater
	default:
		return OutcomeEqual
	}
}

// State is the game's position in its lifecycle.
type State int

const (
	StateAwaitingInput State = iota // blocked on the next input line
	StateEvaluating                 // a parsed guess is being compared
	StateWon                        // terminal, reached only on an equal guess
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateEvaluating:
		return "evaluating"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}
