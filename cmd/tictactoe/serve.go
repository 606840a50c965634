package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tic-tac-toe SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own private game with the mode and size
selectors. The board-size preference is shared by every connection.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tictactoe/host_key

Examples:
  tictactoe serve                           # Listen on :23234 with auto-generated key
  tictactoe serve --ssh :2222               # Listen on port 2222
  tictactoe serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, cfg.LogLevel).With("component", "ssh")

	sshCfg := tui.SSHServerConfigFrom(cfg)
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	store := openStore(context.Background(), cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(sshCfg, storeOrNil(store), logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting tic-tac-toe SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
