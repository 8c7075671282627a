// Package types provides type definitions for structured data used throughout the roommate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is everything persisted for one browsing session: the learned
// profile, the swipe counters and the one-shot flags.
type SessionState struct {
	ID           uuid.UUID          `json:"id"`
	Profile      *PreferenceProfile `json:"profile"`
	Counters     SwipeCounters      `json:"counters"`
	Bootstrapped bool               `json:"bootstrapped"`
	Amplified    bool               `json:"amplified"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Clone returns a deep copy of the state.
func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	out := *s
	out.Profile = s.Profile.Clone()
	out.Counters.LikedItems = append([]string(nil), s.Counters.LikedItems...)
	return &out
}
