package ports

import (
	"context"

	"zippay/internal/core/domain"
)

//go:generate mockgen -source=stores.go -destination=mocks/stores_mock.go -package=mocks

// StateStore is the persistence collaborator: a whole-state snapshot taken
// after each successful mutation, loaded once on startup.
type StateStore interface {
	// Load returns the persisted state, or nil, nil when no snapshot exists.
	Load(ctx context.Context) (*domain.GlobalState, error)
	// Save persists the full state blob.
	Save(ctx context.Context, state *domain.GlobalState) error
}

// SnapshotCache is a best-effort fast-path copy of the latest state blob for
// external readers. Failures are logged, never surfaced to callers.
type SnapshotCache interface {
	Get(ctx context.Context) ([]byte, error) // nil, nil when absent
	Set(ctx context.Context, value []byte) error
}
