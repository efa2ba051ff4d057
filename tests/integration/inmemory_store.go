package integration

import (
	"context"
	"sync"

	"zippay/internal/core/domain"
)

// inMemoryStateStore implements ports.StateStore for integration tests.
// Snapshots are deep-copied on both paths so tests never alias engine state.
type inMemoryStateStore struct {
	mu    sync.Mutex
	state *domain.GlobalState
	saves int
}

func newInMemoryStateStore() *inMemoryStateStore {
	return &inMemoryStateStore{}
}

func (s *inMemoryStateStore) Load(ctx context.Context) (*domain.GlobalState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, nil
	}
	return s.state.Clone(), nil
}

func (s *inMemoryStateStore) Save(ctx context.Context, state *domain.GlobalState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	s.saves++
	return nil
}

func (s *inMemoryStateStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
