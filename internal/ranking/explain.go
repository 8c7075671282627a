package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/roommate-matcher/internal/types"
)

// Explanation breaks a compatibility score down into the features that raised
// and lowered it.
type Explanation struct {
	CandidateID string         `json:"candidate_id"`
	Score       int            `json:"score"`
	Strengths   []Contribution `json:"strengths"`
	Conflicts   []Contribution `json:"conflicts"`
	Notes       string         `json:"notes"`
}

// Explain scores a candidate and reports why. It does not modify the profile.
func Explain(profile *types.PreferenceProfile, candidate *types.Candidate) *Explanation {
	contributions := Contributions(profile, candidate)

	explanation := &Explanation{
		Score:     scoreContributions(contributions),
		Strengths: make([]Contribution, 0),
		Conflicts: make([]Contribution, 0),
		Notes:     generateNotes(contributions),
	}
	if candidate != nil {
		explanation.CandidateID = candidate.ID
	}

	for _, c := range contributions {
		switch {
		case c.Weight > 0:
			explanation.Strengths = append(explanation.Strengths, c)
		case c.Weight < 0:
			explanation.Conflicts = append(explanation.Conflicts, c)
		}
	}
	return explanation
}

// generateNotes creates a brief explanation of a candidate's score.
func generateNotes(contributions []Contribution) string {
	if len(contributions) == 0 {
		return "No learned preferences apply yet"
	}

	var parts []string
	for _, category := range types.Categories() {
		var liked, disliked []string
		var points float64
		for _, c := range contributions {
			if c.Category != category {
				continue
			}
			points += c.Points
			switch {
			case c.Weight > 0:
				liked = append(liked, c.Feature)
			case c.Weight < 0:
				disliked = append(disliked, c.Feature)
			}
		}

		if len(liked) > 0 {
			strength := "Some"
			if points/Importance(category) >= 30 {
				strength = "Strong"
			}
			parts = append(parts, fmt.Sprintf("%s match on %s (%s)", strength, category, strings.Join(liked, ", ")))
		}
		if len(disliked) > 0 {
			parts = append(parts, fmt.Sprintf("Conflicts on %s (%s)", category, strings.Join(disliked, ", ")))
		}
	}

	if len(parts) == 0 {
		return "Only neutral preferences apply"
	}
	return strings.Join(parts, ". ")
}
