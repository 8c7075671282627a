package candidates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/roommate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCandidates_Wrapped(t *testing.T) {
	path := writeFile(t, "candidates.json", `{
		"candidates": [
			{"id": "r1", "name": "Alex", "lifestyleTags": ["Clean", "Quiet"], "interests": ["Music"], "university": "UofT"},
			{"id": "r2", "lifestyleTags": [], "interests": [], "studyHabits": "Library"}
		]
	}`)

	list, err := LoadCandidates(path)
	require.NoError(t, err)
	require.Len(t, list.Candidates, 2)
	assert.Equal(t, "Alex", list.Candidates[0].Name)
	assert.Equal(t, []string{"Clean", "Quiet"}, list.Candidates[0].LifestyleTags)
	assert.Equal(t, "Library", list.Candidates[1].StudyHabits)
}

func TestLoadCandidates_BareArray(t *testing.T) {
	path := writeFile(t, "candidates.json", `[{"id": "r1", "interests": ["Chess"]}]`)

	list, err := LoadCandidates(path)
	require.NoError(t, err)
	require.Len(t, list.Candidates, 1)
	assert.Equal(t, []string{"Chess"}, list.Candidates[0].Interests)
}

func TestLoadCandidates_FileNotFound(t *testing.T) {
	_, err := LoadCandidates("nonexistent_file.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadCandidates_InvalidJSON(t *testing.T) {
	path := writeFile(t, "invalid.json", "{ invalid json }")

	_, err := LoadCandidates(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "failed to unmarshal candidates JSON")
}

func TestLoadSwipeLog(t *testing.T) {
	path := writeFile(t, "swipes.json", `{"swipes": [{"candidate_id": "r1", "direction": "like"}, {"candidate_id": "r2", "direction": "left"}]}`)

	log, err := LoadSwipeLog(path)
	require.NoError(t, err)
	require.Len(t, log.Swipes, 2)
	assert.Equal(t, "left", log.Swipes[1].Direction)
}

func TestLoadOnboardingAnswers(t *testing.T) {
	path := writeFile(t, "answers.json", `{"lifestyle": {"Clean": 1}, "interests": ["Music"], "studyHabits": "Library", "university": "UofT"}`)

	answers, err := LoadOnboardingAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, answers.Lifestyle["Clean"])
	assert.Equal(t, "UofT", answers.University)

	bad := writeFile(t, "bad.json", `{"lifestyle": {"Clean": 99}}`)
	_, err = LoadOnboardingAnswers(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid onboarding answers")
}

func TestLoadProfile_FillsMissingCategories(t *testing.T) {
	path := writeFile(t, "profile.json", `{"lifestyle": {"Clean": 0.225}}`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.225, profile.Lifestyle["Clean"])
	for _, c := range types.Categories() {
		assert.NotNil(t, profile.Weights(c), string(c))
	}
}

func TestIndex(t *testing.T) {
	list := &types.CandidateList{Candidates: []types.Candidate{
		{ID: "a", Name: "first"},
		{ID: "b"},
		{ID: "a", Name: "second"},
	}}

	index := Index(list)
	require.Len(t, index, 2)
	assert.Equal(t, "first", index["a"].Name)
}

func TestNormalize(t *testing.T) {
	list := &types.CandidateList{Candidates: []types.Candidate{
		{
			ID:                " r1 ",
			LifestyleTags:     []string{" Clean", "clean", "", "Quiet "},
			Interests:         []string{"Music", "MUSIC", "  "},
			PersonalityTraits: nil,
			StudyHabits:       " Library ",
			University:        "UofT ",
		},
	}}

	require.NoError(t, Normalize(list))

	c := list.Candidates[0]
	assert.Equal(t, "r1", c.ID)
	assert.Equal(t, []string{"Clean", "clean", "Quiet"}, c.LifestyleTags, "labels keep their case")
	assert.Equal(t, []string{"Music", "MUSIC"}, c.Interests)
	assert.Empty(t, c.PersonalityTraits)
	assert.Equal(t, "Library", c.StudyHabits)
	assert.Equal(t, "UofT", c.University)
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		list    *types.CandidateList
		wantErr string
	}{
		{
			name:    "missing id",
			list:    &types.CandidateList{Candidates: []types.Candidate{{ID: "  "}}},
			wantErr: "candidate at index 0 has no id",
		},
		{
			name:    "duplicate id",
			list:    &types.CandidateList{Candidates: []types.Candidate{{ID: "a"}, {ID: " a"}}},
			wantErr: "duplicate candidate id 'a'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Normalize(tt.list)
			require.Error(t, err)

			var normErr *NormalizationError
			require.True(t, errors.As(err, &normErr))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(25, 42)
	second := Generate(25, 42)
	other := Generate(25, 7)

	require.Len(t, first, 25)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestGenerate_WellFormed(t *testing.T) {
	pool := Generate(50, 1)

	list := &types.CandidateList{Candidates: pool}
	require.NoError(t, Normalize(list), "generated pools must already be normalized")

	for _, c := range pool {
		assert.NotEmpty(t, c.ID)
		assert.GreaterOrEqual(t, c.Age, 18)
		assert.LessOrEqual(t, c.Age, 30)
		assert.GreaterOrEqual(t, c.Budget, 600)
		assert.LessOrEqual(t, c.Budget, 2000)
		assert.GreaterOrEqual(t, len(c.LifestyleTags), 2)
		assert.LessOrEqual(t, len(c.LifestyleTags), 4)
		assert.NotEmpty(t, c.Interests)
		assert.NotEmpty(t, c.StudyHabits)
		assert.NotEmpty(t, c.University)
	}
	assert.Equal(t, "mock_001", pool[0].ID)
}

func TestGenerate_NonPositive(t *testing.T) {
	assert.Empty(t, Generate(0, 1))
	assert.Empty(t, Generate(-3, 1))
}
