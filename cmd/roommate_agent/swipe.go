package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/preference"
	"github.com/jonathan/roommate-matcher/internal/types"
	schemafiles "github.com/jonathan/roommate-matcher/schemas"
	"github.com/spf13/cobra"
)

var swipeCmd = &cobra.Command{
	Use:   "swipe",
	Short: "Apply one swipe to a profile",
	Long: "Updates a PreferenceProfile with a like or dislike of one candidate. --count is the number of swipes " +
		"made before this one; early swipes move the profile more.",
	RunE: runSwipe,
}

var (
	swipeProfile    string
	swipeCandidates string
	swipeCandidate  string
	swipeDirection  string
	swipeCount      int
	swipeOutput     string
)

func init() {
	swipeCmd.Flags().StringVarP(&swipeProfile, "profile", "p", "", "Path to input PreferenceProfile JSON file (required)")
	swipeCmd.Flags().StringVarP(&swipeCandidates, "candidates", "c", "", "Path to candidates JSON file (required)")
	swipeCmd.Flags().StringVar(&swipeCandidate, "candidate", "", "ID of the swiped candidate (required)")
	swipeCmd.Flags().StringVarP(&swipeDirection, "direction", "d", "", "like (right) or dislike (left) (required)")
	swipeCmd.Flags().IntVar(&swipeCount, "count", 0, "Number of swipes made before this one")
	swipeCmd.Flags().StringVarP(&swipeOutput, "out", "o", "", "Path to output PreferenceProfile JSON file (defaults to --profile)")

	for _, name := range []string{"profile", "candidates", "candidate", "direction"} {
		if err := swipeCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(swipeCmd)
}

func runSwipe(_ *cobra.Command, _ []string) error {
	direction, err := types.ParseDirection(swipeDirection)
	if err != nil {
		return err
	}
	if swipeCount < 0 {
		return fmt.Errorf("count must be non-negative, got %d", swipeCount)
	}

	profile, err := candidates.LoadProfile(swipeProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	pool, err := loadCandidatePool(swipeCandidates)
	if err != nil {
		return err
	}
	candidate, ok := candidates.Index(pool)[swipeCandidate]
	if !ok {
		return fmt.Errorf("candidate %q not found in %s", swipeCandidate, swipeCandidates)
	}

	updated := preference.Update(profile, candidate, direction, swipeCount)
	updated = preference.CapWeights(updated, cfg.Engine.WeightCap)

	out := swipeOutput
	if out == "" {
		out = swipeProfile
	}
	if err := writeJSON(out, updated, schemafiles.PreferenceProfile); err != nil {
		return err
	}

	if verbose {
		printer().PrintProfile(updated)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully applied %s of %s (swipe #%d) to %s\n", direction, candidate.ID, swipeCount+1, out)
	return nil
}
