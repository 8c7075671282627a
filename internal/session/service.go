package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/roommate-matcher/internal/logging"
	"github.com/jonathan/roommate-matcher/internal/metrics"
	"github.com/jonathan/roommate-matcher/internal/preference"
	"github.com/jonathan/roommate-matcher/internal/ranking"
	"github.com/jonathan/roommate-matcher/internal/types"
)

// Options tunes a Service.
type Options struct {
	// WeightCap clamps every stored weight to [-WeightCap, WeightCap] after
	// each mutation. 0 disables capping.
	WeightCap float64
	// MaxCandidates bounds a rank request. 0 means unlimited.
	MaxCandidates int
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Service applies preference engine operations to stored sessions.
//
// Mutations of one session are serialized in submission order by a
// per-session lock; distinct sessions proceed concurrently. The lock is
// process-local, so a store shared between processes must have a single
// writer per session.
type Service struct {
	store Store
	opts  Options

	mu    sync.Mutex
	locks map[uuid.UUID]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewService creates a Service backed by store.
func NewService(store Store, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		store: store,
		opts:  opts,
		locks: make(map[uuid.UUID]*sessionLock),
	}
}

// lock acquires the per-session lock and returns its release function.
func (s *Service) lock(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Create starts a session with an empty profile.
func (s *Service) Create(ctx context.Context) (state *types.SessionState, err error) {
	defer func() { metrics.RecordSessionOperation("create", err) }()

	now := s.opts.Now().UTC()
	state = &types.SessionState{
		ID:        uuid.New(),
		Profile:   preference.Initialize(),
		Counters:  types.SwipeCounters{LikedItems: []string{}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logging.Ctx(ctx).Info().Str("session_id", state.ID.String()).Msg("session created")
	return state.Clone(), nil
}

// Get returns a session.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*types.SessionState, error) {
	return s.load(ctx, id)
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*types.SessionState, error) {
	state, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if state.Profile == nil {
		state.Profile = preference.Initialize()
	}
	return state, nil
}

// Delete removes a session.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer func() { metrics.RecordSessionOperation("delete", err) }()

	unlock := s.lock(id)
	defer unlock()

	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}

	logging.Ctx(ctx).Info().Str("session_id", id.String()).Msg("session deleted")
	return nil
}

// mutate runs fn on the current state under the session lock and persists
// the result.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, operation string, fn func(*types.SessionState) error) (result *types.SessionState, err error) {
	defer func() { metrics.RecordSessionOperation(operation, err) }()

	unlock := s.lock(id)
	defer unlock()

	state, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}

	state.Profile = preference.CapWeights(state.Profile, s.opts.WeightCap)
	state.UpdatedAt = s.opts.Now().UTC()
	if err := s.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return state, nil
}

// Swipe applies one swipe. The swipe count passed to the engine is the
// number of swipes recorded before this one. It returns the updated state and
// that count.
func (s *Service) Swipe(ctx context.Context, id uuid.UUID, candidate *types.Candidate, direction types.Direction) (*types.SessionState, int, error) {
	if candidate == nil {
		return nil, 0, fmt.Errorf("%w: candidate is required", ErrInvalidInput)
	}
	if direction != types.DirectionLike && direction != types.DirectionDislike {
		return nil, 0, fmt.Errorf("%w: unknown swipe direction %q", ErrInvalidInput, direction)
	}

	swipeCount := 0
	state, err := s.mutate(ctx, id, "swipe", func(state *types.SessionState) error {
		swipeCount = state.Counters.TotalSwipes
		state.Profile = preference.Update(state.Profile, candidate, direction, swipeCount)
		state.Counters.Record(candidate.ID, direction)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	metrics.RecordSwipe(string(direction))
	logging.Ctx(ctx).Debug().
		Str("session_id", id.String()).
		Str("candidate_id", candidate.ID).
		Str("direction", string(direction)).
		Int("swipe_count", swipeCount).
		Msg("swipe applied")
	return state, swipeCount, nil
}

// Bootstrap seeds the profile from onboarding answers. It succeeds at most
// once per session.
func (s *Service) Bootstrap(ctx context.Context, id uuid.UUID, answers *types.OnboardingAnswers) (*types.SessionState, error) {
	if answers == nil {
		return nil, fmt.Errorf("%w: onboarding answers are required", ErrInvalidInput)
	}
	if err := answers.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.mutate(ctx, id, "bootstrap", func(state *types.SessionState) error {
		if state.Bootstrapped {
			return ErrAlreadyBootstrapped
		}
		state.Profile = preference.Bootstrap(state.Profile, answers)
		state.Bootstrapped = true
		return nil
	})
}

// Amplify exaggerates the strongest signals of the profile. It succeeds at
// most once per session.
func (s *Service) Amplify(ctx context.Context, id uuid.UUID) (*types.SessionState, error) {
	return s.mutate(ctx, id, "amplify", func(state *types.SessionState) error {
		if state.Amplified {
			return ErrAlreadyAmplified
		}
		state.Profile = preference.Amplify(state.Profile)
		state.Amplified = true
		return nil
	})
}

// ImportProfile replaces the profile of a session, e.g. to restore a copy
// kept by a client. Counters and flags are left unchanged.
func (s *Service) ImportProfile(ctx context.Context, id uuid.UUID, profile *types.PreferenceProfile) (*types.SessionState, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: profile is required", ErrInvalidInput)
	}
	return s.mutate(ctx, id, "import", func(state *types.SessionState) error {
		state.Profile = profile.Clone()
		return nil
	})
}

// Score explains the compatibility of one candidate with the session profile.
func (s *Service) Score(ctx context.Context, id uuid.UUID, candidate *types.Candidate) (*ranking.Explanation, error) {
	if candidate == nil {
		return nil, fmt.Errorf("%w: candidate is required", ErrInvalidInput)
	}
	state, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	explanation := ranking.Explain(state.Profile, candidate)
	metrics.RecordScore(explanation.Score)
	return explanation, nil
}

// Rank orders a candidate pool by compatibility with the session profile.
func (s *Service) Rank(ctx context.Context, id uuid.UUID, candidates []types.Candidate) (*types.RankedCandidates, error) {
	if s.opts.MaxCandidates > 0 && len(candidates) > s.opts.MaxCandidates {
		return nil, fmt.Errorf("%w: %d candidates exceeds the limit of %d", ErrInvalidInput, len(candidates), s.opts.MaxCandidates)
	}
	state, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ranked := ranking.RankCandidates(state.Profile, candidates)
	metrics.RecordRank(len(candidates))
	return ranked, nil
}

// Features returns the strongest positive (bottom=false) or negative
// (bottom=true) features of one category.
func (s *Service) Features(ctx context.Context, id uuid.UUID, category types.Category, bottom bool, limit int) ([]types.FeatureWeight, error) {
	state, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if bottom {
		return preference.BottomFeatures(state.Profile, category, limit), nil
	}
	return preference.TopFeatures(state.Profile, category, limit), nil
}
