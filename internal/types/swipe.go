// Package types provides type definitions for structured data used throughout the roommate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Direction is the binary feedback of a swipe.
type Direction string

// Swipe directions
const (
	DirectionLike    Direction = "like"
	DirectionDislike Direction = "dislike"
)

// ParseDirection resolves a direction name. "right"/"left" are accepted as
// aliases for like/dislike.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "like", "right":
		return DirectionLike, nil
	case "dislike", "left":
		return DirectionDislike, nil
	}
	return "", fmt.Errorf("invalid swipe direction: %q (expected like or dislike)", s)
}

// SwipeEvent is one piece of feedback on a candidate. SwipeCount is the number
// of swipes made before this one.
type SwipeEvent struct {
	CandidateID string    `json:"candidate_id"`
	Direction   Direction `json:"direction"`
	SwipeCount  int       `json:"swipe_count"`
}

// SwipeCounters is the caller-side bookkeeping from which the swipe count of
// the next update is derived.
type SwipeCounters struct {
	TotalSwipes int      `json:"totalSwipes"`
	LikedItems  []string `json:"likedItems"`
}

// Record advances the counters by one swipe. Liked candidate IDs are kept once.
func (c *SwipeCounters) Record(candidateID string, direction Direction) {
	c.TotalSwipes++
	if direction != DirectionLike || candidateID == "" {
		return
	}
	for _, id := range c.LikedItems {
		if id == candidateID {
			return
		}
	}
	c.LikedItems = append(c.LikedItems, candidateID)
}

// SwipeRecord is one line of a swipe log replayed by the CLI.
type SwipeRecord struct {
	CandidateID string `json:"candidate_id"`
	Direction   string `json:"direction"`
}

// SwipeLog is an ordered list of swipes.
type SwipeLog struct {
	Swipes []SwipeRecord `json:"swipes"`
}
