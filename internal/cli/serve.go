package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeguess/internal/httpserver"
	"github.com/SeamusWaldron/cubeguess/internal/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game as a JSON API",
	Long: `Serve the game over HTTP so a browser client can play.

Each client creates a session with POST /api/sessions and plays it through
the answer, next and reset endpoints. Idle sessions are removed after
CUBEGUESS_SESSION_TTL.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from CUBEGUESS_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel, true)
	if err != nil {
		return err
	}

	srv, err := httpserver.New(cfg, httpserver.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
