// Package session keeps preference profiles and swipe counters per browsing
// session and serializes the updates applied to each one.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/roommate-matcher/internal/metrics"
	"github.com/jonathan/roommate-matcher/internal/types"
)

// Store persists session state. Get returns (nil, nil) for an unknown ID.
// Implementations must not retain or hand out aliases of the states they are
// given or return.
type Store interface {
	Create(ctx context.Context, state *types.SessionState) error
	Get(ctx context.Context, id uuid.UUID) (*types.SessionState, error)
	Save(ctx context.Context, state *types.SessionState) error
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*types.SessionState
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]*types.SessionState)}
}

// Create stores a new session.
func (m *MemoryStore) Create(ctx context.Context, state *types.SessionState) error {
	return m.Save(ctx, state)
}

// Get returns a copy of a session, or nil if it does not exist.
func (m *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*types.SessionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id].Clone(), nil
}

// Save stores a copy of a session.
func (m *MemoryStore) Save(ctx context.Context, state *types.SessionState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[state.ID] = state.Clone()
	return nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (m *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// instrumented records the latency of every call of the wrapped store.
type instrumented struct {
	Store
	driver string
}

// Instrument wraps a store so its calls are timed under the given driver label.
func Instrument(store Store, driver string) Store {
	return &instrumented{Store: store, driver: driver}
}

func (s *instrumented) observe(operation string, start time.Time) {
	metrics.RecordStoreCall(s.driver, operation, time.Since(start))
}

func (s *instrumented) Create(ctx context.Context, state *types.SessionState) error {
	defer s.observe("create", time.Now())
	return s.Store.Create(ctx, state)
}

func (s *instrumented) Get(ctx context.Context, id uuid.UUID) (*types.SessionState, error) {
	defer s.observe("get", time.Now())
	return s.Store.Get(ctx, id)
}

func (s *instrumented) Save(ctx context.Context, state *types.SessionState) error {
	defer s.observe("save", time.Now())
	return s.Store.Save(ctx, state)
}

func (s *instrumented) Delete(ctx context.Context, id uuid.UUID) error {
	defer s.observe("delete", time.Now())
	return s.Store.Delete(ctx, id)
}
