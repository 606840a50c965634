package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/match"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the JSON API server",
	Long: `Serve games over HTTP. Every game created through the API is private
to whoever holds its id.

Endpoints:
  POST   /api/games                     - New game {size?, mode?}
  GET    /api/games/{id}                - Current state
  POST   /api/games/{id}/moves          - Place a marker {row, col}
  POST   /api/games/{id}/rewind         - Show an earlier move {index}
  POST   /api/games/{id}/resume         - Let the computer play from there
  POST   /api/games/{id}/reset          - New game {size?}
  DELETE /api/games/{id}                - Drop the game
  GET    /api/games/{id}/events         - Server-sent state updates
  GET|PUT /api/preferences/board-size   - Stored board size {size}

Examples:
  tictactoe web
  tictactoe web --addr 127.0.0.1:9090`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (host:port)")
}

func runWeb(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, cfg.LogLevel).With("component", "web")

	mode, err := match.ParseMode(cfg.Board.Mode)
	if err != nil {
		fail("%v", err)
	}

	addr := cfg.Web.Address
	if flagWebAddr != "" {
		addr = flagWebAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(ctx, cfg, logger)
	if store != nil {
		defer store.Close()
	}

	svc := web.NewService(web.ServiceOptions{
		Board:  cfg.Board,
		Mode:   mode,
		Delay:  cfg.Opponent.Delay,
		Seed:   cfg.Opponent.Seed,
		Store:  storeOrNil(store),
		Logger: logger,
	})
	if err := web.NewServer(addr, svc, logger).Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
