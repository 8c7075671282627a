// Package preference learns a user's implicit roommate preferences from swipe
// feedback and onboarding answers.
//
// Every function takes a profile and returns a new one; inputs are never
// modified. The functions are pure and safe to call concurrently on distinct
// values, but updates of a single profile must be applied in order by the caller.
package preference

import (
	"github.com/jonathan/roommate-matcher/internal/types"
)

// Swipe learning rates
const (
	likeWeight    = 0.15
	dislikeWeight = -0.10

	// warmupSwipes is the number of swipes during which updates are boosted.
	warmupSwipes = 10
	// warmupBoost is the multiplier applied to the very first swipe.
	warmupBoost = 1.5
)

// Onboarding increments
const (
	onboardingListWeight   = 0.3
	onboardingSingleWeight = 0.4
)

// Initialize returns a profile with all five categories empty.
func Initialize() *types.PreferenceProfile {
	return &types.PreferenceProfile{
		Lifestyle:           types.FeatureWeights{},
		Interests:           types.FeatureWeights{},
		StudyHabits:         types.FeatureWeights{},
		PersonalityTraits:   types.FeatureWeights{},
		LocationPreferences: types.FeatureWeights{},
	}
}

// EffectiveWeight returns the per-feature increment of one swipe. During the
// first ten swipes the base weight is scaled by 1.5 - swipeCount/10 (1.5x for
// swipe 0, 0.1 less per swipe); from swipe 10 on the base weight applies as is.
// Negative counts count as 0.
func EffectiveWeight(direction types.Direction, swipeCount int) float64 {
	var base float64
	switch direction {
	case types.DirectionLike:
		base = likeWeight
	case types.DirectionDislike:
		base = dislikeWeight
	default:
		return 0
	}

	if swipeCount < 0 {
		swipeCount = 0
	}
	if swipeCount < warmupSwipes {
		return base * (warmupBoost - float64(swipeCount)/warmupSwipes)
	}
	return base
}

// Update incorporates one swipe. Each feature of the candidate receives the
// effective weight; absent or empty fields leave their category untouched.
func Update(profile *types.PreferenceProfile, candidate *types.Candidate, direction types.Direction, swipeCount int) *types.PreferenceProfile {
	updated := profile.Clone()
	if candidate == nil {
		return updated
	}

	weight := EffectiveWeight(direction, swipeCount)
	if weight == 0 {
		return updated
	}

	for _, category := range types.Categories() {
		weights := updated.Weights(category)
		for _, feature := range candidate.Features(category) {
			weights[feature] += weight
		}
	}

	return updated
}

// Bootstrap seeds a profile from the onboarding quiz. Repeated calls are
// additive: answering twice counts twice.
func Bootstrap(profile *types.PreferenceProfile, answers *types.OnboardingAnswers) *types.PreferenceProfile {
	updated := profile.Clone()
	if answers == nil {
		return updated
	}

	for feature, strength := range answers.Lifestyle {
		updated.Lifestyle[feature] += strength * onboardingListWeight
	}
	for _, interest := range answers.Interests {
		updated.Interests[interest] += onboardingListWeight
	}
	if answers.StudyHabits != "" {
		updated.StudyHabits[answers.StudyHabits] += onboardingSingleWeight
	}
	for _, trait := range answers.PersonalityTraits {
		updated.PersonalityTraits[trait] += onboardingListWeight
	}
	if answers.University != "" {
		updated.LocationPreferences[answers.University] += onboardingSingleWeight
	}

	return updated
}
