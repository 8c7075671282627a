// Package ranking scores roommate candidates against a learned preference
// profile and orders candidate pools by compatibility.
package ranking

import (
	"math"

	"github.com/jonathan/roommate-matcher/internal/types"
)

// Category importance multipliers. Day-to-day living habits weigh more than
// shared hobbies.
const (
	lifestyleImportance   = 1.5
	interestsImportance   = 1.0
	studyHabitsImportance = 1.8
	personalityImportance = 1.3
	locationImportance    = 1.2
)

const (
	// NeutralScore is returned when no candidate feature has been learned yet.
	NeutralScore = 50
	minScore     = 0
	maxScore     = 100

	// snapPrecision removes float accumulation noise before rounding.
	snapPrecision = 1e9
)

// Importance returns the multiplier of a category, or 0 for an unknown one.
func Importance(c types.Category) float64 {
	switch c {
	case types.CategoryLifestyle:
		return lifestyleImportance
	case types.CategoryInterests:
		return interestsImportance
	case types.CategoryStudyHabits:
		return studyHabitsImportance
	case types.CategoryPersonalityTraits:
		return personalityImportance
	case types.CategoryLocation:
		return locationImportance
	}
	return 0
}

// Contribution is one matched feature's share of a compatibility score.
type Contribution struct {
	Category   types.Category `json:"category"`
	Feature    string         `json:"feature"`
	Weight     float64        `json:"weight"`
	Importance float64        `json:"importance"`
	// Points is weight * 100 * importance, before normalization.
	Points float64 `json:"points"`
}

// Contributions lists every candidate feature that has a key in the matching
// profile category, regardless of the weight's sign. Order follows category
// order, then the candidate's own feature order.
func Contributions(profile *types.PreferenceProfile, candidate *types.Candidate) []Contribution {
	out := make([]Contribution, 0)
	if profile == nil || candidate == nil {
		return out
	}

	for _, category := range types.Categories() {
		importance := Importance(category)
		for _, feature := range candidate.Features(category) {
			weight, ok := profile.Lookup(category, feature)
			if !ok {
				continue
			}
			out = append(out, Contribution{
				Category:   category,
				Feature:    feature,
				Weight:     weight,
				Importance: importance,
				Points:     weight * 100 * importance,
			})
		}
	}
	return out
}

// Score computes the 0-100 compatibility of a candidate. Candidates with no
// learned feature score exactly NeutralScore.
func Score(profile *types.PreferenceProfile, candidate *types.Candidate) int {
	return scoreContributions(Contributions(profile, candidate))
}

func scoreContributions(contributions []Contribution) int {
	var weighted, totalImportance float64
	for _, c := range contributions {
		weighted += c.Points
		totalImportance += c.Importance
	}

	if len(contributions) == 0 || totalImportance <= 0 {
		return NeutralScore
	}

	raw := NeutralScore + weighted/totalImportance
	raw = math.Round(raw*snapPrecision) / snapPrecision
	return int(math.Floor(clamp(raw) + 0.5))
}

// clamp bounds a raw score before integer conversion so unbounded weights
// cannot overflow.
func clamp(raw float64) float64 {
	if math.IsNaN(raw) || raw < minScore {
		return minScore
	}
	if raw > maxScore {
		return maxScore
	}
	return raw
}
