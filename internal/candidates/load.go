package candidates

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/jonathan/roommate-matcher/internal/types"
)

// LoadCandidates loads a candidate pool from a JSON file. Both the wrapped
// {"candidates": [...]} form and a bare array are accepted.
func LoadCandidates(path string) (*types.CandidateList, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var list types.CandidateList
	if err := json.Unmarshal(content, &list); err == nil && list.Candidates != nil {
		return &list, nil
	}

	var bare []types.Candidate
	if err := json.Unmarshal(content, &bare); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal candidates JSON",
			Cause:   err,
		}
	}
	return &types.CandidateList{Candidates: bare}, nil
}

// LoadSwipeLog loads an ordered swipe log from a JSON file.
func LoadSwipeLog(path string) (*types.SwipeLog, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var log types.SwipeLog
	if err := json.Unmarshal(content, &log); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal swipe log JSON",
			Cause:   err,
		}
	}
	return &log, nil
}

// LoadOnboardingAnswers loads and validates onboarding quiz answers.
func LoadOnboardingAnswers(path string) (*types.OnboardingAnswers, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var answers types.OnboardingAnswers
	if err := json.Unmarshal(content, &answers); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal onboarding answers JSON",
			Cause:   err,
		}
	}
	if err := answers.Validate(); err != nil {
		return nil, &LoadError{
			Message: "invalid onboarding answers",
			Cause:   err,
		}
	}
	return &answers, nil
}

// LoadProfile loads a serialized preference profile. Missing categories come
// back as empty maps.
func LoadProfile(path string) (*types.PreferenceProfile, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var profile types.PreferenceProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal preference profile JSON",
			Cause:   err,
		}
	}
	return profile.Clone(), nil
}

// Index maps candidate IDs to records. Later duplicates are ignored.
func Index(list *types.CandidateList) map[string]*types.Candidate {
	index := make(map[string]*types.Candidate, len(list.Candidates))
	for i := range list.Candidates {
		c := &list.Candidates[i]
		if _, exists := index[c.ID]; !exists {
			index[c.ID] = c
		}
	}
	return index
}

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return content, nil
}
