package match

import (
	"context"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// BoardSizeStore persists the board-size preference.
type BoardSizeStore interface {
	// LoadBoardSize returns the stored size; ok is false when none is stored.
	LoadBoardSize(ctx context.Context) (size int, ok bool, err error)
	SaveBoardSize(ctx context.Context, size int) error
}

// InitialSize returns the stored board size, or fallback when nothing usable
// is stored. A store error is returned alongside the fallback.
func InitialSize(ctx context.Context, store BoardSizeStore, fallback int) (int, error) {
	if store == nil {
		return fallback, nil
	}
	size, ok, err := store.LoadBoardSize(ctx)
	if err != nil {
		return fallback, fmt.Errorf("match: load board size: %w", err)
	}
	if !ok || !tictactoe.SupportedSize(size) {
		return fallback, nil
	}
	return size, nil
}

// SaveSize validates and stores a board size.
func SaveSize(ctx context.Context, store BoardSizeStore, size int) error {
	if !tictactoe.SupportedSize(size) {
		return fmt.Errorf("%w: %d", tictactoe.ErrUnsupportedBoardSize, size)
	}
	if store == nil {
		return nil
	}
	if err := store.SaveBoardSize(ctx, size); err != nil {
		return fmt.Errorf("match: save board size: %w", err)
	}
	return nil
}

// MemoryStore keeps the preference in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	size int
	set  bool
}

func (m *MemoryStore) LoadBoardSize(context.Context) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size, m.set, nil
}

func (m *MemoryStore) SaveBoardSize(_ context.Context, size int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size, m.set = size, true
	return nil
}

// ClearBoardSize forgets the stored size.
func (m *MemoryStore) ClearBoardSize(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size, m.set = 0, false
	return nil
}
