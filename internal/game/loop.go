package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/thruflo/hilo/internal/rng"
)

// ExitReason indicates why the loop stopped.
type ExitReason int

const (
	ExitReasonUnknown     ExitReason = iota
	ExitReasonWon                    // Correct guess submitted
	ExitReasonInputClosed            // Input stream ended or failed, fatal
	ExitReasonCanceled               // Context canceled by the host
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitReasonWon:
		return "won"
	case ExitReasonInputClosed:
		return "input closed"
	case ExitReasonCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a game.
type Result struct {
	Reason  ExitReason
	Secret  int
	Guesses int // valid parsed guesses; malformed lines are not counted
	Err     error
}

// Options holds configuration for creating a Loop instance.
// This struct enables test-friendly construction with explicit dependencies.
type Options struct {
	Secret int             // Optional: fixed secret in [SecretMin, SecretMax]; 0 draws one
	Source rng.Source      // Optional: random source for the draw (defaults to rng.Default())
	Input  io.Reader       // Optional: guess input (defaults to os.Stdin)
	Output io.Writer       // Optional: prompt/feedback output (defaults to os.Stdout)
	Logger *zerolog.Logger // Optional: diagnostics (defaults to a no-op logger)
	Reveal bool            // Print the secret at game start (teaching aid)
}

// Loop drives one game: it owns the secret and the read-parse-compare cycle.
type Loop struct {
	secret  int
	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger
	reveal  bool
	state   State
	guesses int
}

// NewLoop creates a Loop with the given options. The secret is drawn here,
// once, and never changes for the lifetime of the game.
func NewLoop(opts Options) *Loop {
	src := opts.Source
	if src == nil {
		src = rng.Default()
	}
	secret := opts.Secret
	if secret == 0 {
		secret = rng.Between(src, SecretMin, SecretMax)
	}

	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Loop{
		secret: secret,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
		reveal: opts.Reveal,
		state:  StateAwaitingInput,
	}
}

// Secret returns the target value for this game.
func (l *Loop) Secret() int { return l.secret }

// State returns the loop's current lifecycle state.
func (l *Loop) State() State { return l.state }

// Run plays the game until the secret is guessed or input becomes
// unavailable. It returns a Result indicating why the loop stopped.
//
// Malformed lines (empty, non-numeric, negative, fractional) are discarded
// and the prompt repeats; they never terminate the loop and never count as
// guesses. The only fatal condition is the input stream ending or erroring,
// since no further guess can ever arrive.
func (l *Loop) Run(ctx context.Context) Result {
	fmt.Fprintln(l.out, "Guess the number!")
	if l.reveal {
		fmt.Fprintf(l.out, "The secret number is: %d\n", l.secret)
	}
	l.log.Debug().Int("secret", l.secret).Msg("game started")

	for {
		if err := ctx.Err(); err != nil {
			return l.result(ExitReasonCanceled, err)
		}

		fmt.Fprintln(l.out, "Please input your guess.")

		line, err := l.readLine()
		if err != nil {
			l.log.Error().Err(err).Msg("input stream unavailable")
			return l.result(ExitReasonInputClosed, err)
		}

		guess, ok := parseGuess(line)
		if !ok {
			// Recoverable: stay in AwaitingInput and re-prompt.
			l.log.Debug().Str("input", line).Msg("ignoring unparseable guess")
			continue
		}

		l.state = StateEvaluating
		l.guesses++

		switch Compare(guess, l.secret) {
		case OutcomeLess:
			fmt.Fprintln(l.out, "Too small!")
			l.state = StateAwaitingInput
		case OutcomeGreater:
			fmt.Fprintln(l.out, "Too big!")
			l.state = StateAwaitingInput
		case OutcomeEqual:
			fmt.Fprintln(l.out, "You win!")
			l.state = StateWon
			return l.result(ExitReasonWon, nil)
		}
	}
}

// readLine blocks for the next input line. A scanner error or a clean end
// of stream are both fatal to the game.
func (l *Loop) readLine() (string, error) {
	if l.in.Scan() {
		return l.in.Text(), nil
	}
	if err := l.in.Err(); err != nil {
		return "", fmt.Errorf("read guess: %w", err)
	}
	return "", errors.New("input stream closed before a winning guess")
}

// parseGuess trims surrounding whitespace and parses the line as an
// unsigned decimal integer.
func parseGuess(line string) (int, bool) {
	trimmed := strings.TrimSpace(line)
	n, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func (l *Loop) result(reason ExitReason, err error) Result {
	return Result{
		Reason:  reason,
		Secret:  l.secret,
		Guesses: l.guesses,
		Err:     err,
	}
}
