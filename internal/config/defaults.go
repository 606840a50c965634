package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches
// defaults/tictactoe.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		LogLevel: "info",
		Board: BoardConfig{
			DefaultSize: 3,
			MinSize:     3,
			MaxSize:     10,
			Mode:        "friend",
		},
		Opponent: OpponentConfig{
			Delay: 500 * time.Millisecond,
		},
		Storage: StorageConfig{
			Backend:    BackendSQLite,
			SQLitePath: "~/.tictactoe/preferences.db",
			Redis: RedisConfig{
				Addr: "localhost:6379",
				Key:  "tictactoe:board_size",
			},
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Web: WebConfig{
			Address: ":8080",
		},
	}
}
