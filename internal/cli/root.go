package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "hilo",
	Short: "Number-guessing game played on the terminal",
	Long: `Hilo draws a secret number between 1 and 100 and asks you to guess
it. Each guess is answered with "Too small!", "Too big!" or "You win!".
The game ends when you guess the number.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("hilo version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
