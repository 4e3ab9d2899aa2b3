// Package cli implements the command-line interface for cubeguess.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeguess/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	logLevel string
	envFile  string
	verbose  bool

	// cfg is loaded before every command runs.
	cfg config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeguess",
	Short: "Cube color guessing game",
	Long: `cubeguess - A trivia game about the hidden faces of a Rubik's Cube.

The cube is shown with its front and up faces visible. Name the color of
one of the hidden faces and build a streak of correct answers.

Play in the terminal with 'cubeguess play', or serve the game as a JSON
API with 'cubeguess serve'.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from CUBEGUESS_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Load settings from this .env file (default: .env if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (same as --log-level debug)")
}

// loadConfig reads .env and the environment, then applies global flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	loaded, err := config.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if verbose {
		loaded.LogLevel = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cfg = loaded
	return nil
}
