package candidates

import (
	"fmt"
	"math/rand"

	"github.com/jonathan/roommate-matcher/internal/types"
)

var (
	mockNames = []string{
		"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery",
		"Quinn", "Rowan", "Sam", "Charlie", "Dakota", "Emerson", "Hayden", "Skyler",
	}
	mockPrograms = []string{
		"Computer Science", "Engineering", "Biology", "Economics", "Psychology",
		"Architecture", "Music", "Nursing", "Mathematics", "History",
	}
	mockUniversities = []string{"UofT", "UBC", "McGill", "Waterloo", "Queen's", "McMaster"}
	mockLifestyle    = []string{
		"Clean", "Quiet", "Early Bird", "Night Owl", "Pets", "No Pets", "Party",
		"Vegetarian", "Smoke-free", "Cooks Often", "Guests Often", "Minimalist",
	}
	mockInterests = []string{
		"Music", "Gaming", "Hiking", "Cooking", "Reading", "Movies", "Fitness",
		"Art", "Photography", "Travel", "Chess", "Basketball",
	}
	mockStudyHabits = []string{"Library", "Home Study", "Group Study", "Night Owl", "Early Morning"}
	mockTraits      = []string{
		"Introvert", "Extrovert", "Organized", "Easygoing", "Outgoing", "Calm",
		"Respectful", "Spontaneous", "Tidy", "Talkative",
	}
)

// Generate returns n randomly assembled roommate candidates. The same seed
// always yields the same pool.
func Generate(n int, seed int64) []types.Candidate {
	if n <= 0 {
		return []types.Candidate{}
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // mock data, not security sensitive

	pool := make([]types.Candidate, 0, n)
	for i := 0; i < n; i++ {
		name := pick(rng, mockNames)
		program := pick(rng, mockPrograms)
		pool = append(pool, types.Candidate{
			ID:                fmt.Sprintf("mock_%03d", i+1),
			Name:              name,
			Age:               18 + rng.Intn(13),
			Program:           program,
			Budget:            600 + 50*rng.Intn(29),
			Bio:               fmt.Sprintf("%s studying %s, looking for a roommate.", name, program),
			LifestyleTags:     sample(rng, mockLifestyle, 2+rng.Intn(3)),
			Interests:         sample(rng, mockInterests, 1+rng.Intn(4)),
			StudyHabits:       pick(rng, mockStudyHabits),
			PersonalityTraits: sample(rng, mockTraits, 1+rng.Intn(3)),
			University:        pick(rng, mockUniversities),
		})
	}
	return pool
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// sample draws k distinct values, preserving the draw order.
func sample(rng *rand.Rand, values []string, k int) []string {
	if k > len(values) {
		k = len(values)
	}
	out := make([]string, 0, k)
	for _, idx := range rng.Perm(len(values))[:k] {
		out = append(out, values[idx])
	}
	return out
}
