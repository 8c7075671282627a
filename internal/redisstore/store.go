// Package redisstore persists preference sessions in Redis so several API
// replicas can share them.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jonathan/roommate-matcher/internal/types"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultPrefix is prepended to every session key.
const DefaultPrefix = "roommate:session:"

// Store is a session store backed by Redis.
type Store struct {
	rdb    goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// Connect parses a redis:// URL, opens a client and pings it.
func Connect(ctx context.Context, url, prefix string, ttl time.Duration) (*Store, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}

	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(rdb, prefix, ttl), nil
}

// New wraps an existing client. An empty prefix uses DefaultPrefix; a ttl of 0
// keeps sessions forever.
func New(rdb goredis.UniversalClient, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Key returns the Redis key of a session.
func (s *Store) Key(id uuid.UUID) string {
	return s.prefix + id.String()
}

// Create stores a new session. It fails if the ID is already taken.
func (s *Store) Create(ctx context.Context, state *types.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ok, err := s.rdb.SetNX(ctx, s.Key(state.ID), raw, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s already exists", state.ID)
	}
	return nil
}

// Get retrieves a session, or nil if it does not exist or has expired.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*types.SessionState, error) {
	raw, err := s.rdb.Get(ctx, s.Key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return decode(raw)
}

func decode(raw []byte) (*types.SessionState, error) {
	var state types.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	state.Profile = state.Profile.Clone()
	if state.Counters.LikedItems == nil {
		state.Counters.LikedItems = []string{}
	}
	return &state, nil
}

// Save writes a session and restarts its TTL.
func (s *Store) Save(ctx context.Context, state *types.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, s.Key(state.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rdb.Del(ctx, s.Key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.rdb.Close()
}
