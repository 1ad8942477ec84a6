package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "gridpath:board:"

// RedisStore keeps boards as JSON documents in Redis with a TTL that is
// refreshed on every write. Updates of one board are serialized across
// processes with a redsync mutex.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisStore wraps client. A zero ttl keeps boards forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	pool := goredis.NewPool(client)
	return &RedisStore{
		client: client,
		locker: redsync.New(pool),
		ttl:    ttl,
	}
}

func boardKey(id uuid.UUID) string { return keyPrefix + id.String() }

// Create implements Store.
func (s *RedisStore) Create(ctx context.Context, b *Board) error {
	return s.put(ctx, b)
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Board, error) {
	data, err := s.client.Get(ctx, boardKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("board: redis get %s: %w", id, err)
	}
	b := &Board{}
	if err := json.Unmarshal(data, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update implements Store. The board is read, changed and written back while
// holding a distributed lock on its key.
func (s *RedisStore) Update(ctx context.Context, id uuid.UUID, fn func(*Board) error) (*Board, error) {
	mutex := s.locker.NewMutex(boardKey(id) + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("board: lock %s: %w", id, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(b); err != nil {
		return nil, err
	}
	if err := s.put(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.client.Del(ctx, boardKey(id)).Result()
	if err != nil {
		return fmt.Errorf("board: redis del %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) put(ctx context.Context, b *Board) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, boardKey(b.ID()), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("board: redis set %s: %w", b.ID(), err)
	}
	return nil
}
