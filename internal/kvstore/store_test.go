package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/jonathan/roommate-matcher/internal/preference"
	"github.com/jonathan/roommate-matcher/internal/session"
	"github.com/jonathan/roommate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ session.Store = (*Store)(nil)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, ttl)
}

func newState() *types.SessionState {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &types.SessionState{
		ID:        uuid.New(),
		Profile:   preference.Initialize(),
		Counters:  types.SwipeCounters{LikedItems: []string{}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_CreateGet(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	state := newState()
	state.Profile.StudyHabits["Early Bird"] = 0.4
	require.NoError(t, store.Create(ctx, state))

	got, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state.ID, got.ID)
	assert.Equal(t, 0.4, got.Profile.StudyHabits["Early Bird"])
	assert.NotNil(t, got.Profile.Interests)
	assert.Equal(t, []string{}, got.Counters.LikedItems)
	assert.True(t, state.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_CreateDuplicate(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	state := newState()
	require.NoError(t, store.Create(ctx, state))

	err := store.Create(ctx, state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t, 0)

	got, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	state := newState()
	require.NoError(t, store.Create(ctx, state))

	state.Counters.Record("c7", types.DirectionLike)
	state.Bootstrapped = true
	require.NoError(t, store.Save(ctx, state))

	got, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Counters.TotalSwipes)
	assert.Equal(t, []string{"c7"}, got.Counters.LikedItems)
	assert.True(t, got.Bootstrapped)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	state := newState()
	require.NoError(t, store.Create(ctx, state))
	require.NoError(t, store.Delete(ctx, state.ID))
	require.NoError(t, store.Delete(ctx, state.ID), "deleting twice is fine")

	got, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CanceledContext(t *testing.T) {
	store := newTestStore(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, newState()), context.Canceled)
	_, err := store.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_TTL(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	state := newState()
	require.NoError(t, store.Save(ctx, state))

	err := store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(state.ID))
		if err != nil {
			return err
		}
		assert.NotZero(t, item.ExpiresAt())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_OpenOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(dir, 0)
	require.NoError(t, err)
	state := newState()
	require.NoError(t, store.Create(ctx, state))
	require.NoError(t, store.Close())

	store, err = Open(dir, 0)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state.ID, got.ID)
}

func TestStore_WithService(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()
	svc := session.NewService(store, session.Options{})

	state, err := svc.Create(ctx)
	require.NoError(t, err)

	candidate := &types.Candidate{ID: "c1", Interests: []string{"Hiking"}}
	for i := 0; i < 3; i++ {
		_, _, err = svc.Swipe(ctx, state.ID, candidate, types.DirectionDislike)
		require.NoError(t, err)
	}

	got, err := svc.Get(ctx, state.ID)
	require.NoError(t, err)
	// -0.10 * (1.5 + 1.4 + 1.3)
	assert.InDelta(t, -0.42, got.Profile.Interests["Hiking"], 1e-9)
	assert.Equal(t, 3, got.Counters.TotalSwipes)
}
