// Package types provides type definitions for structured data used throughout the roommate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Candidate represents a roommate record. Only the feature fields are read by
// the preference engine; the rest is passed through untouched.
type Candidate struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name,omitempty"`
	Age     int    `json:"age,omitempty"`
	Program string `json:"program,omitempty"`
	Budget  int    `json:"budget,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Image   string `json:"image,omitempty"`

	LifestyleTags     []string `json:"lifestyleTags"`
	Interests         []string `json:"interests"`
	StudyHabits       string   `json:"studyHabits,omitempty"`
	PersonalityTraits []string `json:"personalityTraits,omitempty"`
	University        string   `json:"university,omitempty"`
}

// CandidateList is the on-disk wrapper for a pool of candidates.
type CandidateList struct {
	Candidates []Candidate `json:"candidates"`
}

// Features returns the candidate's feature labels for a category. Single-valued
// fields yield at most one label; empty values yield none.
func (c *Candidate) Features(category Category) []string {
	switch category {
	case CategoryLifestyle:
		return c.LifestyleTags
	case CategoryInterests:
		return c.Interests
	case CategoryStudyHabits:
		if c.StudyHabits == "" {
			return nil
		}
		return []string{c.StudyHabits}
	case CategoryPersonalityTraits:
		return c.PersonalityTraits
	case CategoryLocation:
		if c.University == "" {
			return nil
		}
		return []string{c.University}
	}
	return nil
}
