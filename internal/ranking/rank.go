package ranking

import (
	"sort"

	"github.com/jonathan/roommate-matcher/internal/types"
)

// Rank orders candidates by descending compatibility score. The sort is
// stable: equal scores keep their input order. The input slice is not modified.
func Rank(profile *types.PreferenceProfile, candidates []types.Candidate) []types.Candidate {
	ranked := RankCandidates(profile, candidates)
	return ranked.Candidates()
}

// RankCandidates scores and orders a candidate pool, attaching matched
// features and a short explanation to every entry.
func RankCandidates(profile *types.PreferenceProfile, candidates []types.Candidate) *types.RankedCandidates {
	ranked := make([]types.RankedCandidate, 0, len(candidates))
	for i := range candidates {
		candidate := candidates[i]
		contributions := Contributions(profile, &candidate)

		ranked = append(ranked, types.RankedCandidate{
			CandidateID:     candidate.ID,
			Score:           scoreContributions(contributions),
			MatchedFeatures: matchedFeatures(contributions),
			Notes:           generateNotes(contributions),
			Candidate:       &candidate,
		})
	}

	// Sort by score (descending), ties keep input order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return &types.RankedCandidates{Ranked: ranked}
}

// matchedFeatures returns the positively weighted features of a candidate.
func matchedFeatures(contributions []Contribution) []string {
	matched := make([]string, 0)
	for _, c := range contributions {
		if c.Weight > 0 {
			matched = append(matched, c.Feature)
		}
	}
	return matched
}
