package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/match"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	flagListPrefs bool
	flagResetSize bool
)

var sizeCmd = &cobra.Command{
	Use:   "size [N]",
	Short: "Show or set the preferred board size",
	Long: `Without an argument, print the board size new games start with.
With an argument, store it as the new preference.

Examples:
  tictactoe size
  tictactoe size 5
  tictactoe size --list
  tictactoe size --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSize,
}

func init() {
	sizeCmd.Flags().BoolVar(&flagListPrefs, "list", false, "List every stored preference (sqlite backend)")
	sizeCmd.Flags().BoolVar(&flagResetSize, "reset", false, "Forget the stored size and use the configured default")
}

func runSize(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		fail("opening preference store: %v", err)
	}
	defer store.Close()

	if len(args) == 1 {
		size, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			fail("board size must be a number, got %q", args[0])
		}
		if size < cfg.Board.MinSize || size > cfg.Board.MaxSize {
			fail("board size %d outside %d..%d", size, cfg.Board.MinSize, cfg.Board.MaxSize)
		}
		if err := match.SaveSize(ctx, store, size); err != nil {
			fail("saving board size: %v", err)
		}
		logger.Debug("board size saved", "size", size, "backend", cfg.Storage.Backend)
		fmt.Printf("Board size set to %dx%d\n", size, size)
		return
	}

	if flagResetSize {
		if err := store.ClearBoardSize(ctx); err != nil {
			fail("clearing board size: %v", err)
		}
		fmt.Printf("Board size reset to the default %dx%d\n", cfg.Board.DefaultSize, cfg.Board.DefaultSize)
		return
	}

	if flagListPrefs {
		listPreferences(ctx, store)
		return
	}

	size, err := match.InitialSize(ctx, store, cfg.Board.DefaultSize)
	if err != nil {
		logger.Warn("could not load board size", "error", err)
	}
	size = cfg.Board.ClampSize(size)
	fmt.Printf("Board size: %dx%d\n", size, size)
}

func listPreferences(ctx context.Context, store storage.PreferenceStore) {
	sqlStore, ok := store.(*storage.Store)
	if !ok {
		fail("--list needs the sqlite backend")
	}
	prefs, err := sqlStore.All(ctx)
	if err != nil {
		fail("retrieving preferences: %v", err)
	}
	if len(prefs) == 0 {
		fmt.Println("No preferences stored yet.")
		return
	}

	fmt.Printf("  %-12s  %-8s  %s\n", "Key", "Value", "Updated")
	fmt.Printf("  %-12s  %-8s  %s\n", "---", "-----", "-------")
	for _, p := range prefs {
		fmt.Printf("  %-12s  %-8s  %s\n", p.Key, p.Value, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
