package board

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store keeps boards by ID. Update is the only way to change a stored board:
// implementations serialize concurrent updates of the same board.
type Store interface {
	// Create stores a new board.
	Create(ctx context.Context, b *Board) error
	// Get returns the board with id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Board, error)
	// Update applies fn to the board with id and persists the result.
	// If fn returns an error nothing is persisted.
	Update(ctx context.Context, id uuid.UUID, fn func(*Board) error) (*Board, error)
	// Delete removes the board with id, or returns ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryStore is an in-process Store. Boards are shared by pointer and rely
// on their own locking for edits.
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[uuid.UUID]*Board
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[uuid.UUID]*Board)}
}

// Create implements Store.
func (s *MemoryStore) Create(_ context.Context, b *Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[b.ID()] = b
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

// Update implements Store.
func (s *MemoryStore) Update(ctx context.Context, id uuid.UUID, fn func(*Board) error) (*Board, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[id]; !ok {
		return ErrNotFound
	}
	delete(s.boards, id)
	return nil
}
