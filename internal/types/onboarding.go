// Package types provides type definitions for structured data used throughout the roommate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// OnboardingAnswers holds the explicit preference quiz completed before any swiping.
type OnboardingAnswers struct {
	Lifestyle         map[string]float64 `json:"lifestyle,omitempty" validate:"omitempty,dive,keys,required,endkeys,gte=-10,lte=10"`
	Interests         []string           `json:"interests,omitempty" validate:"omitempty,dive,required"`
	StudyHabits       string             `json:"studyHabits,omitempty"`
	PersonalityTraits []string           `json:"personalityTraits,omitempty" validate:"omitempty,dive,required"`
	University        string             `json:"university,omitempty"`
}

// Validate validates the OnboardingAnswers using the validator.
func (a *OnboardingAnswers) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}
