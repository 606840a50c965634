package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var (
	flagSize int
	flagMode string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. Without flags you pick the player mode
and board size first; the chosen size is remembered.

Controls:
  Arrows/hjkl - Move cursor
  Enter/Space - Place marker
  [ / ]       - Step back / forward through the move history
  c           - Let the computer continue from a rewound move
  r           - New game
  + / -       - Bigger / smaller board
  Esc/b       - Back to setup
  Q/Ctrl+C    - Quit

Examples:
  tictactoe play
  tictactoe play --mode computer
  tictactoe play --size 7 --mode friend`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size 3..10 (skips the size selector)")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "friend or computer (skips the mode selector)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	// The terminal belongs to the game, so logs go to a file.
	logFile, err := openLogFile()
	if err != nil {
		fail("could not open log file: %v", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg.LogLevel)

	ctx := context.Background()
	store := openStore(ctx, cfg, logger)
	if store != nil {
		defer store.Close()
	}

	modeName := cfg.Board.Mode
	if flagMode != "" {
		modeName = flagMode
	}
	mode, err := match.ParseMode(modeName)
	if err != nil {
		fail("%v", err)
	}

	size := flagSize
	if size == 0 {
		size, err = match.InitialSize(ctx, storeOrNil(store), cfg.Board.DefaultSize)
		if err != nil {
			logger.Warn("could not load board size", "error", err)
		}
	} else if size < cfg.Board.MinSize || size > cfg.Board.MaxSize {
		fail("board size %d outside %d..%d", size, cfg.Board.MinSize, cfg.Board.MaxSize)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Board:   cfg.Board,
		Mode:    mode,
		Size:    size,
		AskMode: flagMode == "",
		AskSize: flagSize == 0,
		Delay:   cfg.Opponent.Delay,
		Store:   storeOrNil(store),
		Logger:  logger,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    cfg.Opponent.Seed,
		},
	}
	logger.Info("starting game", "size", size, "mode", mode)
	if err := tui.Run(opts); err != nil {
		logger.Error("game ended with error", "error", err)
		fail("%v", err)
	}
}

func openLogFile() (*os.File, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "tictactoe.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
