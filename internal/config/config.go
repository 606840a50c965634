// Package config provides YAML-based configuration loading for the
// tic-tac-toe terminal, SSH and web front ends.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Engine limits. Board bounds in the config must stay inside them.
const (
	minBoardSize = 3
	maxBoardSize = 10
)

// Config is the full application configuration.
type Config struct {
	LogLevel string         `yaml:"log_level" env:"TICTACTOE_LOG_LEVEL"`
	Board    BoardConfig    `yaml:"board"`
	Opponent OpponentConfig `yaml:"opponent"`
	Storage  StorageConfig  `yaml:"storage"`
	SSH      SSHConfig      `yaml:"ssh"`
	Web      WebConfig      `yaml:"web"`
}

// BoardConfig bounds the size selector and picks the size used when no
// preference is stored.
type BoardConfig struct {
	DefaultSize int    `yaml:"default_size" env:"TICTACTOE_BOARD_SIZE"`
	MinSize     int    `yaml:"min_size" env:"TICTACTOE_BOARD_MIN"`
	MaxSize     int    `yaml:"max_size" env:"TICTACTOE_BOARD_MAX"`
	Mode        string `yaml:"mode" env:"TICTACTOE_MODE"` // friend or computer
}

// OpponentConfig tunes the computer player.
type OpponentConfig struct {
	Delay time.Duration `yaml:"delay" env:"TICTACTOE_OPPONENT_DELAY"`
	Seed  int64         `yaml:"seed" env:"TICTACTOE_OPPONENT_SEED"` // 0 = time based
}

// StorageConfig selects where the board-size preference lives.
type StorageConfig struct {
	Backend    string      `yaml:"backend" env:"TICTACTOE_STORAGE"` // sqlite, redis or memory
	SQLitePath string      `yaml:"sqlite_path" env:"TICTACTOE_DB"`
	Redis      RedisConfig `yaml:"redis"`
}

// RedisConfig is used when Storage.Backend is "redis".
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"TICTACTOE_REDIS_ADDR"`
	Password string `yaml:"password" env:"TICTACTOE_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"TICTACTOE_REDIS_DB"`
	Key      string `yaml:"key" env:"TICTACTOE_REDIS_KEY"`
}

// SSHConfig configures `tictactoe serve`.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"TICTACTOE_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key" env:"TICTACTOE_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"TICTACTOE_SSH_IDLE_TIMEOUT"`
}

// WebConfig configures `tictactoe web`.
type WebConfig struct {
	Address string `yaml:"address" env:"TICTACTOE_WEB_ADDR"`
}

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	b := c.Board
	if b.MinSize < minBoardSize || b.MaxSize > maxBoardSize || b.MinSize > b.MaxSize {
		return fmt.Errorf("%w: board size range %d..%d outside %d..%d",
			ErrInvalid, b.MinSize, b.MaxSize, minBoardSize, maxBoardSize)
	}
	if b.DefaultSize < b.MinSize || b.DefaultSize > b.MaxSize {
		return fmt.Errorf("%w: default board size %d outside %d..%d",
			ErrInvalid, b.DefaultSize, b.MinSize, b.MaxSize)
	}
	switch strings.ToLower(b.Mode) {
	case "", "friend", "computer":
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalid, b.Mode)
	}
	if c.Opponent.Delay < 0 {
		return fmt.Errorf("%w: negative opponent delay %s", ErrInvalid, c.Opponent.Delay)
	}
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite backend needs sqlite_path", ErrInvalid)
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: redis backend needs redis.addr", ErrInvalid)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: storage backend %q", ErrInvalid, c.Storage.Backend)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// ClampSize keeps a requested size inside the configured board range.
func (b BoardConfig) ClampSize(size int) int {
	if size < b.MinSize {
		return b.MinSize
	}
	if size > b.MaxSize {
		return b.MaxSize
	}
	return size
}

// Sizes lists the selectable board sizes in ascending order.
func (b BoardConfig) Sizes() []int {
	out := make([]int, 0, b.MaxSize-b.MinSize+1)
	for n := b.MinSize; n <= b.MaxSize; n++ {
		out = append(out, n)
	}
	return out
}
