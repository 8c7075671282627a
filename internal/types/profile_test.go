//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "lifestyle", want: CategoryLifestyle},
		{input: "Interests", want: CategoryInterests},
		{input: "studyHabits", want: CategoryStudyHabits},
		{input: "study_habits", want: CategoryStudyHabits},
		{input: "personality-traits", want: CategoryPersonalityTraits},
		{input: "locationPreferences", want: CategoryLocation},
		{input: "university", want: CategoryLocation},
		{input: "budget", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferenceProfile_WeightAbsentKeyIsZero(t *testing.T) {
	p := &PreferenceProfile{Lifestyle: FeatureWeights{"Clean": 0.4}}

	assert.Equal(t, 0.4, p.Weight(CategoryLifestyle, "Clean"))
	assert.Equal(t, 0.0, p.Weight(CategoryLifestyle, "Quiet"))
	assert.Equal(t, 0.0, p.Weight(CategoryInterests, "Music"))

	_, ok := p.Lookup(CategoryLifestyle, "Quiet")
	assert.False(t, ok)
}

func TestPreferenceProfile_CloneIsDeep(t *testing.T) {
	original := &PreferenceProfile{
		Lifestyle: FeatureWeights{"Clean": 0.4},
		Interests: FeatureWeights{"Music": 0.2},
	}

	clone := original.Clone()
	clone.Lifestyle["Clean"] = 9
	clone.StudyHabits["Night Owl"] = 1

	assert.Equal(t, 0.4, original.Lifestyle["Clean"])
	assert.Nil(t, original.StudyHabits)
	assert.NotNil(t, clone.LocationPreferences)
}

func TestPreferenceProfile_CloneNil(t *testing.T) {
	var p *PreferenceProfile
	clone := p.Clone()

	require.NotNil(t, clone)
	assert.Equal(t, 0, clone.Size())
	for _, c := range Categories() {
		assert.NotNil(t, clone.Weights(c), "category %s should be initialized", c)
	}
}

func TestPreferenceProfile_JSONFieldNames(t *testing.T) {
	p := &PreferenceProfile{
		Lifestyle:           FeatureWeights{"Clean": 0.225},
		Interests:           FeatureWeights{},
		StudyHabits:         FeatureWeights{},
		PersonalityTraits:   FeatureWeights{},
		LocationPreferences: FeatureWeights{"UofT": 0.4},
	}

	jsonBytes, err := json.Marshal(p)
	require.NoError(t, err)

	for _, c := range Categories() {
		assert.Contains(t, string(jsonBytes), `"`+string(c)+`"`)
	}
	assert.Contains(t, string(jsonBytes), `"Clean":0.225`)
	assert.Contains(t, string(jsonBytes), `"UofT":0.4`)
}

func TestCandidate_Features(t *testing.T) {
	c := Candidate{
		ID:            "r1",
		LifestyleTags: []string{"Clean", "Quiet"},
		Interests:     []string{"Music"},
		University:    "UofT",
	}

	assert.Equal(t, []string{"Clean", "Quiet"}, c.Features(CategoryLifestyle))
	assert.Equal(t, []string{"Music"}, c.Features(CategoryInterests))
	assert.Nil(t, c.Features(CategoryStudyHabits))
	assert.Nil(t, c.Features(CategoryPersonalityTraits))
	assert.Equal(t, []string{"UofT"}, c.Features(CategoryLocation))
}
