package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeguess"
	"github.com/SeamusWaldron/cubeguess/internal/logging"
	"github.com/SeamusWaldron/cubeguess/internal/tui"
)

// presentationNotice is shown when the terminal cannot host the game.
const presentationNotice = "Failed to initialize the game. Please restart and try again."

var (
	playSeed     uint64
	playStrategy string
	playDelay    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive game in the terminal.

The cube is drawn in 3D and as an unfolded net. The front and up faces are
visible; one hidden face is marked with '?'.

Keyboard shortcuts:
  1-4         - Choose an answer by number
  w/y/r/o/b/g - Choose an answer by color initial
  space/enter - Skip to the next round while feedback is showing
  n           - New game (reset the streak)
  q/Esc       - Quit

Session events are logged to ~/.cubeguess/logs/play_YYYYMMDD_HHMMSS.jsonl.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Seed for a repeatable sequence of cubes")
	playCmd.Flags().StringVar(&playStrategy, "strategy", "", "Cube generation: rotation or axis-shuffle (default from config)")
	playCmd.Flags().DurationVar(&playDelay, "delay", 0, "Pause between an answer and the next round (default from config)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = playStrategy
	}
	if cmd.Flags().Changed("delay") {
		cfg.FeedbackDelay = playDelay
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, cubeguess.WithSeed(playSeed))
	}

	logDir := cfg.LogDir
	if logDir == "" {
		logDir, err = logging.DefaultLogDir()
		if err != nil {
			return err
		}
	}
	f, err := logging.OpenSessionLog(logDir, time.Now())
	if err != nil {
		return err
	}
	defer f.Close()

	log, err := logging.New(f, cfg.LogLevel, false)
	if err != nil {
		return err
	}
	log.Info().Str("strategy", cfg.Strategy).Dur("delay", cfg.FeedbackDelay).Msg("play started")

	if err := tui.Run(log, opts...); err != nil {
		log.Error().Err(err).Msg("presentation failed")
		if errors.Is(err, cubeguess.ErrPresentation) {
			fmt.Fprintln(os.Stderr, presentationNotice)
		}
		return err
	}

	log.Info().Msg("play ended")
	return nil
}
