// Package types provides type definitions for structured data used throughout the roommate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RankedCandidates represents a candidate pool ordered by compatibility
type RankedCandidates struct {
	Ranked []RankedCandidate `json:"ranked"`
}

// RankedCandidate represents a single ranked candidate with score and explanation
type RankedCandidate struct {
	CandidateID     string   `json:"candidate_id"`
	Score           int      `json:"score"`
	MatchedFeatures []string `json:"matched_features"`
	Notes           string   `json:"notes"`
	// Candidate is the full pass-through record
	Candidate *Candidate `json:"candidate,omitempty"`
}

// Candidates returns the ranked records in order.
func (r *RankedCandidates) Candidates() []Candidate {
	out := make([]Candidate, 0, len(r.Ranked))
	for _, rc := range r.Ranked {
		if rc.Candidate != nil {
			out = append(out, *rc.Candidate)
		}
	}
	return out
}
