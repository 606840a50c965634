package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string // defaults to DefaultRedisKey
}

// DefaultRedisKey holds the board size when RedisOptions.Key is empty.
const DefaultRedisKey = "tictactoe:board_size"

// RedisStore keeps the board-size preference in a single Redis string key.
type RedisStore struct {
	client *redis.Client
	key    string
	owned  bool
}

// NewRedisStore connects to Redis and checks the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("storage: failed to connect to Redis: %w", err)
	}

	store := NewRedisStoreFromClient(conn, opts.Key)
	store.owned = true
	return store, nil
}

// NewRedisStoreFromClient wraps an existing client. Close leaves the client
// open.
func NewRedisStoreFromClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// LoadBoardSize returns the stored board size.
func (r *RedisStore) LoadBoardSize(ctx context.Context) (int, bool, error) {
	value, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read %s: %w", r.key, err)
	}
	return parseSize(value)
}

// SaveBoardSize stores the board size without expiry.
func (r *RedisStore) SaveBoardSize(ctx context.Context, size int) error {
	if err := r.client.Set(ctx, r.key, strconv.Itoa(size), 0).Err(); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", r.key, err)
	}
	return nil
}

// ClearBoardSize forgets the stored board size.
func (r *RedisStore) ClearBoardSize(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", r.key, err)
	}
	return nil
}

// Close closes the client if the store created it.
func (r *RedisStore) Close() error {
	if r.owned {
		return r.client.Close()
	}
	return nil
}
