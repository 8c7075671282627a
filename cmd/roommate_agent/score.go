package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/ranking"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score candidates against a profile",
	Long:  "Prints the 0-100 compatibility score of one candidate (--id) or of every candidate in the pool, in pool order.",
	RunE:  runScore,
}

var (
	scoreProfile    string
	scoreCandidates string
	scoreID         string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfile, "profile", "p", "", "Path to input PreferenceProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreCandidates, "candidates", "c", "", "Path to candidates JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreID, "id", "", "Only score the candidate with this ID")

	if err := scoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	profile, err := candidates.LoadProfile(scoreProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	pool, err := loadCandidatePool(scoreCandidates)
	if err != nil {
		return err
	}

	if scoreID != "" {
		candidate, ok := candidates.Index(pool)[scoreID]
		if !ok {
			return fmt.Errorf("candidate %q not found in %s", scoreID, scoreCandidates)
		}
		explanation := ranking.Explain(profile, candidate)
		if verbose {
			printer().PrintExplanation(explanation)
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s\t%d\n", candidate.ID, explanation.Score)
		return nil
	}

	for i := range pool.Candidates {
		c := &pool.Candidates[i]
		_, _ = fmt.Fprintf(os.Stdout, "%s\t%d\n", c.ID, ranking.Score(profile, c))
	}
	return nil
}
