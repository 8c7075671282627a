package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/session"
	"github.com/jonathan/roommate-matcher/internal/types"
	schemafiles "github.com/jonathan/roommate-matcher/schemas"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Learn a profile from a recorded swipe log",
	Long: "Replays an ordered swipe log against a candidate pool in a fresh session and writes the learned PreferenceProfile. " +
		"Onboarding answers, when given, are applied before the first swipe; --amplify sharpens the result afterwards.",
	RunE: runReplay,
}

var (
	replayCandidates string
	replaySwipes     string
	replayAnswers    string
	replayAmplify    bool
	replayOutput     string
)

func init() {
	replayCmd.Flags().StringVarP(&replayCandidates, "candidates", "c", "", "Path to candidates JSON file (required)")
	replayCmd.Flags().StringVarP(&replaySwipes, "swipes", "s", "", "Path to swipe log JSON file (required)")
	replayCmd.Flags().StringVarP(&replayAnswers, "answers", "a", "", "Path to onboarding answers JSON file")
	replayCmd.Flags().BoolVar(&replayAmplify, "amplify", false, "Amplify the profile after the last swipe")
	replayCmd.Flags().StringVarP(&replayOutput, "out", "o", "", "Path to output PreferenceProfile JSON file (required)")

	if err := replayCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := replayCmd.MarkFlagRequired("swipes"); err != nil {
		panic(fmt.Sprintf("failed to mark swipes flag as required: %v", err))
	}
	if err := replayCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load inputs
	pool, err := loadCandidatePool(replayCandidates)
	if err != nil {
		return err
	}
	index := candidates.Index(pool)

	if err := validateInput(schemafiles.SwipeLog, replaySwipes); err != nil {
		return err
	}
	swipeLog, err := candidates.LoadSwipeLog(replaySwipes)
	if err != nil {
		return fmt.Errorf("failed to load swipe log: %w", err)
	}

	var answers *types.OnboardingAnswers
	if replayAnswers != "" {
		if err := validateInput(schemafiles.Onboarding, replayAnswers); err != nil {
			return err
		}
		if answers, err = candidates.LoadOnboardingAnswers(replayAnswers); err != nil {
			return fmt.Errorf("failed to load onboarding answers: %w", err)
		}
	}

	// 2. Replay into a throwaway session
	store := session.NewMemoryStore()
	svc := newService(store)
	state, err := svc.Create(ctx)
	if err != nil {
		return err
	}

	if answers != nil {
		if state, err = svc.Bootstrap(ctx, state.ID, answers); err != nil {
			return fmt.Errorf("failed to bootstrap profile: %w", err)
		}
	}

	for i, record := range swipeLog.Swipes {
		direction, err := types.ParseDirection(record.Direction)
		if err != nil {
			return fmt.Errorf("swipe %d: %w", i+1, err)
		}
		candidate, ok := index[record.CandidateID]
		if !ok {
			return fmt.Errorf("swipe %d: candidate %q not found in %s", i+1, record.CandidateID, replayCandidates)
		}
		if state, _, err = svc.Swipe(ctx, state.ID, candidate, direction); err != nil {
			return fmt.Errorf("swipe %d: %w", i+1, err)
		}
	}

	if replayAmplify {
		if state, err = svc.Amplify(ctx, state.ID); err != nil {
			return fmt.Errorf("failed to amplify profile: %w", err)
		}
	}

	// 3. Write the learned profile
	if err := writeJSON(replayOutput, state.Profile, schemafiles.PreferenceProfile); err != nil {
		return err
	}

	if verbose {
		p := printer()
		p.PrintCounters(state.Counters)
		p.PrintProfile(state.Profile)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully replayed %d swipes (%d liked) to %s\n",
		state.Counters.TotalSwipes, len(state.Counters.LikedItems), replayOutput)
	return nil
}
