// Package kvstore persists preference sessions in an embedded BadgerDB
// database, for single-node deployments that need sessions to survive
// restarts without running Postgres.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jonathan/roommate-matcher/internal/types"
)

const sessionKeyPrefix = "session:"

// Store is a session store backed by BadgerDB.
type Store struct {
	db  *badger.DB
	ttl time.Duration
	own bool
}

// Open opens (or creates) a database in dir. The returned store closes the
// database on Close. A ttl of 0 keeps sessions forever.
func Open(dir string, ttl time.Duration) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return &Store{db: db, ttl: ttl, own: true}, nil
}

// New wraps an already opened database. Close leaves it open.
func New(db *badger.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

func sessionKey(id uuid.UUID) []byte {
	return []byte(sessionKeyPrefix + id.String())
}

// Create stores a new session. It fails if the ID is already taken.
func (s *Store) Create(ctx context.Context, state *types.SessionState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := sessionKey(state.ID)
		_, err := txn.Get(key)
		if err == nil {
			return fmt.Errorf("session %s already exists", state.ID)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("get session: %w", err)
		}
		return s.set(txn, key, data)
	})
}

// Get retrieves a session by ID, or nil if it does not exist or has expired.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*types.SessionState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var state *types.SessionState
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		return item.Value(func(val []byte) error {
			state = &types.SessionState{}
			return json.Unmarshal(val, state)
		})
	})
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, nil
	}

	state.Profile = state.Profile.Clone()
	if state.Counters.LikedItems == nil {
		state.Counters.LikedItems = []string{}
	}
	return state, nil
}

// Save writes a session, replacing any stored version and restarting its TTL.
func (s *Store) Save(ctx context.Context, state *types.SessionState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return s.set(txn, sessionKey(state.ID), data)
	})
}

func (s *Store) set(txn *badger.Txn, key, data []byte) error {
	entry := badger.NewEntry(key, data)
	if s.ttl > 0 {
		entry = entry.WithTTL(s.ttl)
	}
	if err := txn.SetEntry(entry); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

// Count returns the number of live sessions.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

// Close closes the database if the store opened it.
func (s *Store) Close() error {
	if !s.own {
		return nil
	}
	return s.db.Close()
}
