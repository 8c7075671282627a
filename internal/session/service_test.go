package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/roommate-matcher/internal/preference"
	"github.com/jonathan/roommate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts Options) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return NewService(Instrument(store, "memory"), opts), store
}

func alex() *types.Candidate {
	return &types.Candidate{
		ID:            "r1",
		LifestyleTags: []string{"Clean", "Quiet"},
		Interests:     []string{"Music"},
		University:    "UofT",
	}
}

func TestService_Create(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, Options{Now: func() time.Time { return fixed }})

	state, err := svc.Create(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, state.ID)
	assert.Equal(t, 0, state.Profile.Size())
	assert.Equal(t, 0, state.Counters.TotalSwipes)
	assert.Equal(t, fixed, state.CreatedAt)
	assert.Equal(t, 1, store.Len())

	got, err := svc.Get(context.Background(), state.ID)
	require.NoError(t, err)
	assert.Equal(t, state.ID, got.ID)
}

func TestService_GetUnknown(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Swipe_TracksCount(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	first, count, err := svc.Swipe(ctx, state.ID, alex(), types.DirectionLike)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.InDelta(t, 0.225, first.Profile.Lifestyle["Clean"], 1e-9)
	assert.Equal(t, 1, first.Counters.TotalSwipes)
	assert.Equal(t, []string{"r1"}, first.Counters.LikedItems)

	second, count, err := svc.Swipe(ctx, state.ID, alex(), types.DirectionLike)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.InDelta(t, 0.225+0.21, second.Profile.Lifestyle["Clean"], 1e-9)
	assert.Equal(t, []string{"r1"}, second.Counters.LikedItems, "liked items are deduplicated")

	third, count, err := svc.Swipe(ctx, state.ID, &types.Candidate{ID: "r2", Interests: []string{"Chess"}}, types.DirectionDislike)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.InDelta(t, -0.13, third.Profile.Interests["Chess"], 1e-9)
	assert.Equal(t, 3, third.Counters.TotalSwipes)
	assert.Equal(t, []string{"r1"}, third.Counters.LikedItems)
}

func TestService_Swipe_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	_, _, err = svc.Swipe(ctx, state.ID, nil, types.DirectionLike)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Swipe(ctx, state.ID, alex(), types.Direction("up"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Swipe(ctx, uuid.New(), alex(), types.DirectionLike)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Swipe_ConcurrentSameSession(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	const swipes = 40
	var wg sync.WaitGroup
	for i := 0; i < swipes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.Swipe(ctx, state.ID, alex(), types.DirectionLike)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := svc.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, swipes, final.Counters.TotalSwipes)

	expected := 0.0
	for count := 0; count < swipes; count++ {
		expected += preference.EffectiveWeight(types.DirectionLike, count)
	}
	assert.InDelta(t, expected, final.Profile.Lifestyle["Clean"], 1e-9)
	assert.Empty(t, svc.locks, "locks are released once idle")
}

func TestService_BootstrapOnce(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	answers := &types.OnboardingAnswers{Lifestyle: map[string]float64{"Clean": 1}, University: "UofT"}

	seeded, err := svc.Bootstrap(ctx, state.ID, answers)
	require.NoError(t, err)
	assert.True(t, seeded.Bootstrapped)
	assert.InDelta(t, 0.3, seeded.Profile.Lifestyle["Clean"], 1e-9)

	_, err = svc.Bootstrap(ctx, state.ID, answers)
	assert.ErrorIs(t, err, ErrAlreadyBootstrapped)

	after, err := svc.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, after.Profile.Lifestyle["Clean"], 1e-9, "a rejected bootstrap leaves the profile untouched")
}

func TestService_Bootstrap_InvalidAnswers(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.Bootstrap(ctx, state.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Bootstrap(ctx, state.ID, &types.OnboardingAnswers{Lifestyle: map[string]float64{"Clean": 50}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_AmplifyOnce(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	_, _, err = svc.Swipe(ctx, state.ID, alex(), types.DirectionLike)
	require.NoError(t, err)

	amplified, err := svc.Amplify(ctx, state.ID)
	require.NoError(t, err)
	assert.True(t, amplified.Amplified)
	assert.InDelta(t, 0.3375, amplified.Profile.Lifestyle["Clean"], 1e-9)

	_, err = svc.Amplify(ctx, state.ID)
	assert.ErrorIs(t, err, ErrAlreadyAmplified)
}

func TestService_WeightCap(t *testing.T) {
	svc, _ := newTestService(t, Options{WeightCap: 0.3})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, _, err = svc.Swipe(ctx, state.ID, alex(), types.DirectionLike)
		require.NoError(t, err)
	}

	final, err := svc.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.3, final.Profile.Lifestyle["Clean"])
}

func TestService_ImportProfile(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	profile := preference.Initialize()
	profile.StudyHabits["Library"] = 0.7

	imported, err := svc.ImportProfile(ctx, state.ID, profile)
	require.NoError(t, err)
	assert.Equal(t, 0.7, imported.Profile.StudyHabits["Library"])

	profile.StudyHabits["Library"] = -1
	stored, err := svc.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.7, stored.Profile.StudyHabits["Library"], "imported profile must not alias the caller's value")

	_, err = svc.ImportProfile(ctx, state.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ScoreAndRank(t *testing.T) {
	svc, _ := newTestService(t, Options{MaxCandidates: 3})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	_, _, err = svc.Swipe(ctx, state.ID, alex(), types.DirectionLike)
	require.NoError(t, err)

	explanation, err := svc.Score(ctx, state.ID, &types.Candidate{ID: "r2", LifestyleTags: []string{"Clean"}, University: "UofT"})
	require.NoError(t, err)
	assert.Equal(t, 73, explanation.Score)

	ranked, err := svc.Rank(ctx, state.ID, []types.Candidate{
		{ID: "stranger", Interests: []string{"Chess"}},
		{ID: "twin", LifestyleTags: []string{"Clean", "Quiet"}},
	})
	require.NoError(t, err)
	require.Len(t, ranked.Ranked, 2)
	assert.Equal(t, "twin", ranked.Ranked[0].CandidateID)

	_, err = svc.Rank(ctx, state.ID, make([]types.Candidate, 4))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Score(ctx, state.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Features(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	_, _, err = svc.Swipe(ctx, state.ID, alex(), types.DirectionLike)
	require.NoError(t, err)
	_, _, err = svc.Swipe(ctx, state.ID, &types.Candidate{ID: "r2", LifestyleTags: []string{"Party"}}, types.DirectionDislike)
	require.NoError(t, err)

	top, err := svc.Features(ctx, state.ID, types.CategoryLifestyle, false, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Clean", top[0].Feature)

	bottom, err := svc.Features(ctx, state.ID, types.CategoryLifestyle, true, 5)
	require.NoError(t, err)
	require.Len(t, bottom, 1)
	assert.Equal(t, "Party", bottom[0].Feature)
}

func TestService_Delete(t *testing.T) {
	svc, store := newTestService(t, Options{})
	ctx := context.Background()
	state, err := svc.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, state.ID))
	assert.Equal(t, 0, store.Len())

	err = svc.Delete(ctx, state.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

type failingStore struct {
	*MemoryStore
	err error
}

func (f *failingStore) Save(context.Context, *types.SessionState) error { return f.err }

func TestService_StoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("disk full")
	store := &failingStore{MemoryStore: NewMemoryStore(), err: boom}
	svc := NewService(store, Options{})
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.MemoryStore.Save(ctx, &types.SessionState{ID: id, Profile: preference.Initialize()}))

	_, _, err := svc.Swipe(ctx, id, alex(), types.DirectionLike)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to save session")
}

func TestMemoryStore_CopiesState(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state := &types.SessionState{ID: uuid.New(), Profile: preference.Initialize()}
	require.NoError(t, store.Create(ctx, state))

	state.Profile.Lifestyle["Clean"] = 1
	got, err := store.Get(ctx, state.ID)
	require.NoError(t, err)
	assert.NotContains(t, got.Profile.Lifestyle, "Clean")

	missing, err := store.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.Get(cancelled, state.ID)
	assert.ErrorIs(t, err, context.Canceled)
}
