// Package types provides type definitions for structured data used throughout the roommate-matcher system.
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SwipeRequest represents a swipe submitted for a session.
type SwipeRequest struct {
	Candidate Candidate `json:"candidate"`
	Direction string    `json:"direction" validate:"required,oneof=like dislike right left"`
}

// ScoreRequest represents a request to score one candidate.
type ScoreRequest struct {
	Candidate Candidate `json:"candidate"`
}

// RankRequest represents a request to rank a candidate pool. The pool size is
// bounded by the session service, not here.
type RankRequest struct {
	Candidates []Candidate `json:"candidates" validate:"dive"`
}

// CreateSessionResponse is returned when a session is created.
type CreateSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// SwipeResponse reports the profile and counters after a swipe.
type SwipeResponse struct {
	Profile    *PreferenceProfile `json:"profile"`
	Counters   SwipeCounters      `json:"counters"`
	SwipeCount int                `json:"swipe_count"`
}

// FeaturesResponse lists the strongest features of one category.
type FeaturesResponse struct {
	Category  Category        `json:"category"`
	Direction string          `json:"direction"`
	Features  []FeatureWeight `json:"features"`
}

// Validate validates the SwipeRequest using the validator.
func (r *SwipeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
