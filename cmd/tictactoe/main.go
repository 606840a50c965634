// tictactoe is an N×N tic-tac-toe game for the terminal, SSH and HTTP.
//
// Usage:
//
//	tictactoe play            - Play in this terminal
//	tictactoe serve           - Start SSH server for remote play
//	tictactoe web             - Start the JSON API server
//	tictactoe size [N]        - Show or set the stored board size
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tictactoe/config.yaml)
//	--log-level <lvl>   - debug, info, warn or error
//	--seed <value>      - Set RNG seed for the computer opponent
//	--db <path>         - Set preference database path
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     int64
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe on boards from 3x3 to 10x10",
	Long: `Tic-tac-toe on square boards from 3x3 up to 10x10. A line must fill a
whole row, column or diagonal to win.

Available commands:
  play     - Play in this terminal, against a friend or the computer
  serve    - Start SSH server for remote play
  web      - Start the JSON API server
  size     - Show or set the preferred board size

Examples:
  tictactoe play
  tictactoe play --size 5 --mode computer
  tictactoe serve --ssh :2222
  tictactoe web --addr :9090
  tictactoe size 4`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the computer (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to preference database (sqlite backend)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(sizeCmd)
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("seed") {
		cfg.Opponent.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Backend = config.BackendSQLite
		cfg.Storage.SQLitePath = flagDBPath
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// openStore opens the configured preference store. Games still work without
// one, so a failure is only logged.
func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) storage.PreferenceStore {
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Warn("could not open preference store", "backend", cfg.Storage.Backend, "error", err)
		return nil
	}
	return store
}

// storeOrNil keeps a missing store a true nil interface.
func storeOrNil(s storage.PreferenceStore) match.BoardSizeStore {
	if s == nil {
		return nil
	}
	return s
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
