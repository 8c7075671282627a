package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/roommate-matcher/internal/types"
)

// SessionsTable holds one row per preference session.
const SessionsTable = "preference_sessions"

const createSessionsTable = `CREATE TABLE IF NOT EXISTS preference_sessions (
	id           UUID PRIMARY KEY,
	profile      JSONB NOT NULL,
	counters     JSONB NOT NULL,
	bootstrapped BOOLEAN NOT NULL DEFAULT FALSE,
	amplified    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// sessionRow is the column-level form of a session.
type sessionRow struct {
	ID           uuid.UUID
	Profile      []byte
	Counters     []byte
	Bootstrapped bool
	Amplified    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toRow(state *types.SessionState) (*sessionRow, error) {
	profile, err := json.Marshal(state.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	counters, err := json.Marshal(state.Counters)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal counters: %w", err)
	}
	return &sessionRow{
		ID:           state.ID,
		Profile:      profile,
		Counters:     counters,
		Bootstrapped: state.Bootstrapped,
		Amplified:    state.Amplified,
		CreatedAt:    state.CreatedAt,
		UpdatedAt:    state.UpdatedAt,
	}, nil
}

func (r *sessionRow) toState() (*types.SessionState, error) {
	state := &types.SessionState{
		ID:           r.ID,
		Bootstrapped: r.Bootstrapped,
		Amplified:    r.Amplified,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}

	var profile types.PreferenceProfile
	if err := json.Unmarshal(r.Profile, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	// Clone fills in category maps that were stored as null.
	state.Profile = profile.Clone()

	if err := json.Unmarshal(r.Counters, &state.Counters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal counters: %w", err)
	}
	if state.Counters.LikedItems == nil {
		state.Counters.LikedItems = []string{}
	}
	return state, nil
}

// Create inserts a new session row.
func (db *DB) Create(ctx context.Context, state *types.SessionState) error {
	row, err := toRow(state)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO preference_sessions (id, profile, counters, bootstrapped, amplified, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		row.ID, row.Profile, row.Counters, row.Bootstrapped, row.Amplified, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID. It returns nil when the session does not exist.
func (db *DB) Get(ctx context.Context, id uuid.UUID) (*types.SessionState, error) {
	var row sessionRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile, counters, bootstrapped, amplified, created_at, updated_at
		 FROM preference_sessions
		 WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Profile, &row.Counters, &row.Bootstrapped, &row.Amplified, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return row.toState()
}

// Save upserts a session row.
func (db *DB) Save(ctx context.Context, state *types.SessionState) error {
	row, err := toRow(state)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO preference_sessions (id, profile, counters, bootstrapped, amplified, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			profile = EXCLUDED.profile,
			counters = EXCLUDED.counters,
			bootstrapped = EXCLUDED.bootstrapped,
			amplified = EXCLUDED.amplified,
			updated_at = EXCLUDED.updated_at`,
		row.ID, row.Profile, row.Counters, row.Bootstrapped, row.Amplified, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session row. Deleting an unknown ID is not an error.
func (db *DB) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM preference_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
