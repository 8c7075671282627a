// Package types provides type definitions for structured data used throughout the roommate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Category names one of the five feature groups of a preference profile.
type Category string

// Profile categories. The string values double as the JSON field names.
const (
	CategoryLifestyle         Category = "lifestyle"
	CategoryInterests         Category = "interests"
	CategoryStudyHabits       Category = "studyHabits"
	CategoryPersonalityTraits Category = "personalityTraits"
	CategoryLocation          Category = "locationPreferences"
)

// Categories returns all profile categories in a fixed order.
func Categories() []Category {
	return []Category{
		CategoryLifestyle,
		CategoryInterests,
		CategoryStudyHabits,
		CategoryPersonalityTraits,
		CategoryLocation,
	}
}

// ParseCategory resolves a category name. Matching is case-insensitive and also
// accepts the short forms "location" and "university".
func ParseCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "lifestyle":
		return CategoryLifestyle, nil
	case "interests":
		return CategoryInterests, nil
	case "studyhabits", "study_habits", "study-habits":
		return CategoryStudyHabits, nil
	case "personalitytraits", "personality_traits", "personality-traits":
		return CategoryPersonalityTraits, nil
	case "locationpreferences", "location_preferences", "location", "university":
		return CategoryLocation, nil
	}
	return "", fmt.Errorf("unknown profile category: %q", name)
}

// FeatureWeights maps a free-form feature label to its learned weight.
// A missing key is equivalent to a weight of 0.
type FeatureWeights map[string]float64

// FeatureWeight is a single (feature, weight) pair returned by read-side queries.
type FeatureWeight struct {
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}

// PreferenceProfile is the signed-weight record of a user's inferred likes and
// dislikes across the five feature categories.
type PreferenceProfile struct {
	Lifestyle           FeatureWeights `json:"lifestyle"`
	Interests           FeatureWeights `json:"interests"`
	StudyHabits         FeatureWeights `json:"studyHabits"`
	PersonalityTraits   FeatureWeights `json:"personalityTraits"`
	LocationPreferences FeatureWeights `json:"locationPreferences"`
}

// Weights returns the mapping for a category, or nil for an unknown category.
func (p *PreferenceProfile) Weights(c Category) FeatureWeights {
	switch c {
	case CategoryLifestyle:
		return p.Lifestyle
	case CategoryInterests:
		return p.Interests
	case CategoryStudyHabits:
		return p.StudyHabits
	case CategoryPersonalityTraits:
		return p.PersonalityTraits
	case CategoryLocation:
		return p.LocationPreferences
	}
	return nil
}

// Weight returns the weight of a feature, treating absent keys as 0.
func (p *PreferenceProfile) Weight(c Category, feature string) float64 {
	return p.Weights(c)[feature]
}

// Lookup reports the weight of a feature and whether the key exists at all.
func (p *PreferenceProfile) Lookup(c Category, feature string) (float64, bool) {
	w, ok := p.Weights(c)[feature]
	return w, ok
}

// Clone returns a deep copy. Nil category maps are replaced with empty ones so
// the copy is always safe to write to.
func (p *PreferenceProfile) Clone() *PreferenceProfile {
	if p == nil {
		return &PreferenceProfile{
			Lifestyle:           FeatureWeights{},
			Interests:           FeatureWeights{},
			StudyHabits:         FeatureWeights{},
			PersonalityTraits:   FeatureWeights{},
			LocationPreferences: FeatureWeights{},
		}
	}
	return &PreferenceProfile{
		Lifestyle:           p.Lifestyle.clone(),
		Interests:           p.Interests.clone(),
		StudyHabits:         p.StudyHabits.clone(),
		PersonalityTraits:   p.PersonalityTraits.clone(),
		LocationPreferences: p.LocationPreferences.clone(),
	}
}

// Size returns the total number of learned keys across all categories.
func (p *PreferenceProfile) Size() int {
	n := 0
	for _, c := range Categories() {
		n += len(p.Weights(c))
	}
	return n
}

func (w FeatureWeights) clone() FeatureWeights {
	out := make(FeatureWeights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
