package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"zippay/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ErrCorruptState marks a snapshot row that no longer decodes. Callers may
// treat it as absent and reinitialize rather than refuse to start.
var ErrCorruptState = errors.New("corrupt ledger state")

// StateRepo implements ports.StateStore over a single-row JSONB snapshot.
// The engine serializes all writes, so the row never sees concurrent
// updates; the upsert only covers the very first save.
type StateRepo struct {
	pool Pool
}

// NewStateRepo creates a new StateRepo.
func NewStateRepo(pool Pool) *StateRepo {
	return &StateRepo{pool: pool}
}

// Load reads the persisted state snapshot.
// Returns nil, nil if no snapshot has been saved yet.
func (r *StateRepo) Load(ctx context.Context) (*domain.GlobalState, error) {
	query := `SELECT state FROM ledger_state WHERE id = 1`

	var raw []byte
	err := r.pool.QueryRow(ctx, query).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load ledger state: %w", err)
	}

	state := &domain.GlobalState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("decode ledger state: %w: %w", ErrCorruptState, err)
	}
	return state, nil
}

// Save upserts the full state blob.
func (r *StateRepo) Save(ctx context.Context, state *domain.GlobalState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode ledger state: %w", err)
	}

	query := `INSERT INTO ledger_state (id, state, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, raw); err != nil {
		return fmt.Errorf("save ledger state: %w", err)
	}
	return nil
}
