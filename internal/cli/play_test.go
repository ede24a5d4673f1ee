package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allGuesses is every possible value in order, one per line. Feeding this
// to the game guarantees a win whatever the secret is.
func allGuesses() string {
	var in strings.Builder
	for g := 1; g <= 100; g++ {
		fmt.Fprintf(&in, "%d\n", g)
	}
	return in.String()
}

// execute runs the root command with the given args and scripted stdin,
// returning stdout and the command error.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootPlaysOneGameToCompletion(t *testing.T) {
	out, err := execute(t, allGuesses())
	require.NoError(t, err)

	assert.Contains(t, out, "Guess the number!")
	assert.Contains(t, out, "Please input your guess.")
	assert.Equal(t, 1, strings.Count(out, "You win!"))
}

func TestRootSeedFlagMakesGamesReproducible(t *testing.T) {
	first, err := execute(t, allGuesses(), "--seed", "9")
	require.NoError(t, err)

	second, err := execute(t, allGuesses(), "--seed", "9")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRootRevealFlagPrintsSecret(t *testing.T) {
	out, err := execute(t, allGuesses(), "--seed", "9", "--reveal")
	require.NoError(t, err)

	assert.Contains(t, out, "The secret number is: ")
}

func TestRootFailsWhenInputStreamCloses(t *testing.T) {
	_, err := execute(t, "", "--seed", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input stream closed")
}

func TestRootVersion(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "hilo version dev\n", out)
}
