package preference

import (
	"math"
	"testing"

	"github.com/jonathan/roommate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func sampleCandidate() *types.Candidate {
	return &types.Candidate{
		ID:            "r1",
		Name:          "Alex",
		LifestyleTags: []string{"Clean", "Quiet"},
		Interests:     []string{"Music"},
		University:    "UofT",
	}
}

func TestInitialize_Empty(t *testing.T) {
	p := Initialize()

	require.NotNil(t, p)
	assert.Equal(t, 0, p.Size())
	for _, c := range types.Categories() {
		assert.NotNil(t, p.Weights(c))
	}
}

func TestEffectiveWeight_Warmup(t *testing.T) {
	assert.InDelta(t, 0.225, EffectiveWeight(types.DirectionLike, 0), epsilon)
	assert.InDelta(t, -0.15, EffectiveWeight(types.DirectionDislike, 0), epsilon)
	assert.InDelta(t, 0.15, EffectiveWeight(types.DirectionLike, 5), epsilon)
	assert.InDelta(t, 0.09, EffectiveWeight(types.DirectionLike, 9), epsilon)
	assert.InDelta(t, 0.15, EffectiveWeight(types.DirectionLike, 10), epsilon)
	assert.InDelta(t, 0.15, EffectiveWeight(types.DirectionLike, 250), epsilon)
	assert.InDelta(t, -0.10, EffectiveWeight(types.DirectionDislike, 10), epsilon)
}

func TestEffectiveWeight_EarlySwipeDecay(t *testing.T) {
	steady := math.Abs(EffectiveWeight(types.DirectionLike, 10))
	first := math.Abs(EffectiveWeight(types.DirectionLike, 0))
	assert.InDelta(t, 1.5, first/steady, epsilon)

	// Linear, strictly decreasing over the warmup window
	prev := first
	for count := 1; count < 10; count++ {
		w := math.Abs(EffectiveWeight(types.DirectionLike, count))
		assert.Less(t, w, prev, "swipe %d should weigh less than swipe %d", count, count-1)
		assert.InDelta(t, 0.015, prev-w, epsilon, "decay step at swipe %d", count)
		prev = w
	}
}

func TestEffectiveWeight_LikeDislikeMagnitude(t *testing.T) {
	for _, count := range []int{0, 3, 9, 10, 40} {
		like := EffectiveWeight(types.DirectionLike, count)
		dislike := EffectiveWeight(types.DirectionDislike, count)
		assert.Greater(t, like, 0.0)
		assert.Less(t, dislike, 0.0)
		assert.InDelta(t, 1.5, like/math.Abs(dislike), epsilon)
	}
}

func TestEffectiveWeight_NegativeCountTreatedAsZero(t *testing.T) {
	assert.Equal(t, EffectiveWeight(types.DirectionLike, 0), EffectiveWeight(types.DirectionLike, -3))
}

func TestEffectiveWeight_UnknownDirection(t *testing.T) {
	assert.Equal(t, 0.0, EffectiveWeight(types.Direction("superlike"), 0))
}

func TestUpdate_FirstLike(t *testing.T) {
	p := Update(Initialize(), sampleCandidate(), types.DirectionLike, 0)

	assert.InDelta(t, 0.225, p.Lifestyle["Clean"], epsilon)
	assert.InDelta(t, 0.225, p.Lifestyle["Quiet"], epsilon)
	assert.InDelta(t, 0.225, p.Interests["Music"], epsilon)
	assert.InDelta(t, 0.225, p.LocationPreferences["UofT"], epsilon)

	// Absent fields are no-ops, not zero-signal updates
	assert.Empty(t, p.StudyHabits)
	assert.Empty(t, p.PersonalityTraits)
}

func TestUpdate_AllCategories(t *testing.T) {
	candidate := &types.Candidate{
		ID:                "r2",
		LifestyleTags:     []string{"Early Bird"},
		Interests:         []string{"Hiking"},
		StudyHabits:       "Library",
		PersonalityTraits: []string{"Introvert", "Organized"},
		University:        "McGill",
	}

	p := Update(Initialize(), candidate, types.DirectionDislike, 20)

	assert.InDelta(t, -0.10, p.Lifestyle["Early Bird"], epsilon)
	assert.InDelta(t, -0.10, p.Interests["Hiking"], epsilon)
	assert.InDelta(t, -0.10, p.StudyHabits["Library"], epsilon)
	assert.InDelta(t, -0.10, p.PersonalityTraits["Introvert"], epsilon)
	assert.InDelta(t, -0.10, p.PersonalityTraits["Organized"], epsilon)
	assert.InDelta(t, -0.10, p.LocationPreferences["McGill"], epsilon)
}

func TestUpdate_Accumulates(t *testing.T) {
	p := Initialize()
	for count := 0; count < 12; count++ {
		p = Update(p, sampleCandidate(), types.DirectionLike, count)
	}

	expected := 0.0
	for count := 0; count < 12; count++ {
		expected += EffectiveWeight(types.DirectionLike, count)
	}
	assert.InDelta(t, expected, p.Lifestyle["Clean"], epsilon)
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	original := Initialize()
	original.Lifestyle["Clean"] = 1

	updated := Update(original, sampleCandidate(), types.DirectionLike, 0)

	assert.Equal(t, 1.0, original.Lifestyle["Clean"])
	assert.NotContains(t, original.Interests, "Music")
	assert.InDelta(t, 1.225, updated.Lifestyle["Clean"], epsilon)
}

func TestUpdate_NilInputs(t *testing.T) {
	p := Update(nil, sampleCandidate(), types.DirectionLike, 0)
	assert.InDelta(t, 0.225, p.Lifestyle["Clean"], epsilon)

	p = Update(Initialize(), nil, types.DirectionLike, 0)
	assert.Equal(t, 0, p.Size())
}

func TestBootstrap_Increments(t *testing.T) {
	answers := &types.OnboardingAnswers{
		Lifestyle:         map[string]float64{"Clean": 1, "Party": -1},
		Interests:         []string{"Music", "Gaming"},
		StudyHabits:       "Night Owl",
		PersonalityTraits: []string{"Extrovert"},
		University:        "UofT",
	}

	p := Bootstrap(Initialize(), answers)

	assert.InDelta(t, 0.3, p.Lifestyle["Clean"], epsilon)
	assert.InDelta(t, -0.3, p.Lifestyle["Party"], epsilon)
	assert.InDelta(t, 0.3, p.Interests["Music"], epsilon)
	assert.InDelta(t, 0.3, p.Interests["Gaming"], epsilon)
	assert.InDelta(t, 0.4, p.StudyHabits["Night Owl"], epsilon)
	assert.InDelta(t, 0.3, p.PersonalityTraits["Extrovert"], epsilon)
	assert.InDelta(t, 0.4, p.LocationPreferences["UofT"], epsilon)
}

func TestBootstrap_RepeatedCallsAreAdditive(t *testing.T) {
	answers := &types.OnboardingAnswers{
		Lifestyle:   map[string]float64{"Clean": 0.8},
		Interests:   []string{"Music"},
		StudyHabits: "Library",
		University:  "UBC",
	}

	once := Bootstrap(Initialize(), answers)
	twice := Bootstrap(Bootstrap(Initialize(), answers), answers)

	for _, c := range types.Categories() {
		for feature, w := range once.Weights(c) {
			assert.InDelta(t, 2*w, twice.Weight(c, feature), epsilon, "%s/%s", c, feature)
		}
		assert.Len(t, twice.Weights(c), len(once.Weights(c)))
	}
}

func TestBootstrap_EmptyAnswers(t *testing.T) {
	p := Bootstrap(Initialize(), &types.OnboardingAnswers{})
	assert.Equal(t, 0, p.Size())

	p = Bootstrap(Initialize(), nil)
	assert.Equal(t, 0, p.Size())
}

func TestCapWeights(t *testing.T) {
	p := Initialize()
	p.Lifestyle["Clean"] = 7
	p.Lifestyle["Party"] = -9
	p.Interests["Music"] = 0.5

	capped := CapWeights(p, 5)
	assert.Equal(t, 5.0, capped.Lifestyle["Clean"])
	assert.Equal(t, -5.0, capped.Lifestyle["Party"])
	assert.Equal(t, 0.5, capped.Interests["Music"])
	assert.Equal(t, 7.0, p.Lifestyle["Clean"], "input must not be modified")

	uncapped := CapWeights(p, 0)
	assert.Equal(t, 7.0, uncapped.Lifestyle["Clean"])
}
