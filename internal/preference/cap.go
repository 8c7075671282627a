package preference

import (
	"github.com/jonathan/roommate-matcher/internal/types"
)

// CapWeights clamps every weight into [-limit, limit]. A non-positive limit
// disables capping and returns an unchanged copy.
func CapWeights(profile *types.PreferenceProfile, limit float64) *types.PreferenceProfile {
	capped := profile.Clone()
	if limit <= 0 {
		return capped
	}

	for _, category := range types.Categories() {
		weights := capped.Weights(category)
		for feature, w := range weights {
			if w > limit {
				weights[feature] = limit
			} else if w < -limit {
				weights[feature] = -limit
			}
		}
	}
	return capped
}
