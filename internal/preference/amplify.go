package preference

import (
	"sort"

	"github.com/jonathan/roommate-matcher/internal/types"
)

const (
	// amplifyCount is how many extreme entries per direction are amplified.
	amplifyCount = 3
	// amplifyFactor is the multiplier applied to each amplified entry.
	amplifyFactor = 1.5
)

// Amplify exaggerates the strongest signals of every category: the top three
// positive and bottom three negative weights are multiplied by 1.5. Calling it
// again compounds the effect.
func Amplify(profile *types.PreferenceProfile) *types.PreferenceProfile {
	updated := profile.Clone()

	for _, category := range types.Categories() {
		weights := updated.Weights(category)
		for _, fw := range TopFeatures(updated, category, amplifyCount) {
			weights[fw.Feature] = fw.Weight * amplifyFactor
		}
		for _, fw := range BottomFeatures(updated, category, amplifyCount) {
			weights[fw.Feature] = fw.Weight * amplifyFactor
		}
	}

	return updated
}

// TopFeatures returns up to limit strictly positive features of a category,
// strongest first. Equal weights are ordered by feature name.
func TopFeatures(profile *types.PreferenceProfile, category types.Category, limit int) []types.FeatureWeight {
	return selectFeatures(profile, category, limit, func(w float64) bool { return w > 0 }, true)
}

// BottomFeatures returns up to limit strictly negative features of a category,
// most negative first. Equal weights are ordered by feature name.
func BottomFeatures(profile *types.PreferenceProfile, category types.Category, limit int) []types.FeatureWeight {
	return selectFeatures(profile, category, limit, func(w float64) bool { return w < 0 }, false)
}

func selectFeatures(profile *types.PreferenceProfile, category types.Category, limit int, keep func(float64) bool, descending bool) []types.FeatureWeight {
	if profile == nil || limit <= 0 {
		return []types.FeatureWeight{}
	}

	selected := make([]types.FeatureWeight, 0)
	for feature, weight := range profile.Weights(category) {
		if keep(weight) {
			selected = append(selected, types.FeatureWeight{Feature: feature, Weight: weight})
		}
	}

	sort.Slice(selected, func(i, j int) bool {
		if selected[i].Weight != selected[j].Weight {
			if descending {
				return selected[i].Weight > selected[j].Weight
			}
			return selected[i].Weight < selected[j].Weight
		}
		return selected[i].Feature < selected[j].Feature
	})

	if len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}
