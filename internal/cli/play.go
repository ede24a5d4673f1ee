package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/thruflo/hilo/internal/config"
	"github.com/thruflo/hilo/internal/game"
	"github.com/thruflo/hilo/internal/logging"
	"github.com/thruflo/hilo/internal/rng"
)

var (
	playSeed   uint64
	playReveal bool
)

func init() {
	rootCmd.Flags().Uint64Var(&playSeed, "seed", 0, "deterministic seed for the secret draw (0 = random)")
	rootCmd.Flags().BoolVar(&playReveal, "reveal", false, "print the secret number at game start")
}

// runPlay plays one game on stdin/stdout. It returns an error only when the
// input stream fails, the one unrecoverable condition.
func runPlay(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	// Flags win over both file and env.
	if cmd.Flags().Changed("seed") {
		cfg.Seed = playSeed
	}
	if cmd.Flags().Changed("reveal") {
		cfg.RevealSecret = playReveal
	}

	logger := logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())

	src := rng.Default()
	if cfg.Seed != 0 {
		src = rng.Seeded(cfg.Seed)
		logger.Debug().Uint64("seed", cfg.Seed).Msg("using deterministic seed")
	}

	loop := game.NewLoop(game.Options{
		Source: src,
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
		Logger: &logger,
		Reveal: cfg.RevealSecret,
	})

	res := loop.Run(cmd.Context())
	if res.Reason == game.ExitReasonWon {
		logger.Info().Int("secret", res.Secret).Int("guesses", res.Guesses).Msg("game won")
		return nil
	}
	return res.Err
}
