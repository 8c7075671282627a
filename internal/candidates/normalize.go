package candidates

import (
	"fmt"
	"strings"

	"github.com/jonathan/roommate-matcher/internal/types"
)

// Normalize cleans a candidate pool in place: IDs and feature labels are
// trimmed and empty labels dropped. Labels keep their case and repeats, so a
// normalized candidate updates a profile exactly like the raw one would.
// Every candidate must have a unique, non-empty ID.
func Normalize(list *types.CandidateList) error {
	seen := make(map[string]struct{}, len(list.Candidates))

	for i := range list.Candidates {
		c := &list.Candidates[i]
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			return &NormalizationError{Message: fmt.Sprintf("candidate at index %d has no id", i)}
		}
		if _, exists := seen[c.ID]; exists {
			return &NormalizationError{Message: fmt.Sprintf("duplicate candidate id '%s'", c.ID)}
		}
		seen[c.ID] = struct{}{}

		NormalizeCandidate(c)
	}
	return nil
}

// NormalizeCandidate trims the feature fields of one candidate.
func NormalizeCandidate(c *types.Candidate) {
	c.LifestyleTags = normalizeLabels(c.LifestyleTags)
	c.Interests = normalizeLabels(c.Interests)
	c.PersonalityTraits = normalizeLabels(c.PersonalityTraits)
	c.StudyHabits = strings.TrimSpace(c.StudyHabits)
	c.University = strings.TrimSpace(c.University)
}

func normalizeLabels(labels []string) []string {
	normalized := make([]string, 0, len(labels))
	for _, label := range labels {
		if label = strings.TrimSpace(label); label != "" {
			normalized = append(normalized, label)
		}
	}
	return normalized
}
