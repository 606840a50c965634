package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
)

// ErrCorrupt is returned when a stored value cannot be parsed.
var ErrCorrupt = errors.New("storage: corrupt value")

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// PreferenceStore is a board-size store that owns a connection.
type PreferenceStore interface {
	match.BoardSizeStore
	ClearBoardSize(ctx context.Context) error
	Close() error
}

// New opens the backend selected in cfg.
func New(ctx context.Context, cfg config.StorageConfig) (PreferenceStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		s, err := Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendRedis:
		s, err := NewRedisStore(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendMemory:
		return &memoryStore{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

type memoryStore struct {
	match.MemoryStore
}

func (*memoryStore) Close() error { return nil }

var (
	_ PreferenceStore = (*Store)(nil)
	_ PreferenceStore = (*RedisStore)(nil)
	_ PreferenceStore = (*memoryStore)(nil)
)
