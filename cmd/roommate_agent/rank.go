package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/ranking"
	schemafiles "github.com/jonathan/roommate-matcher/schemas"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against a profile",
	Long:  "Scores every candidate in a pool and writes a RankedCandidates JSON sorted by compatibility, best match first. Equal scores keep pool order.",
	RunE:  runRank,
}

var (
	rankProfile    string
	rankCandidates string
	rankOutput     string
)

func init() {
	rankCmd.Flags().StringVarP(&rankProfile, "profile", "p", "", "Path to input PreferenceProfile JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to candidates JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output RankedCandidates JSON file (required)")

	if err := rankCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	profile, err := candidates.LoadProfile(rankProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	pool, err := loadCandidatePool(rankCandidates)
	if err != nil {
		return err
	}
	if limit := cfg.Engine.MaxCandidates; limit > 0 && len(pool.Candidates) > limit {
		return fmt.Errorf("candidate pool has %d entries, limit is %d", len(pool.Candidates), limit)
	}

	ranked := ranking.RankCandidates(profile, pool.Candidates)
	if err := writeJSON(rankOutput, ranked, schemafiles.RankedCandidates); err != nil {
		return err
	}

	if verbose {
		printer().PrintRankedCandidates(ranked)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d candidates to %s\n", len(ranked.Ranked), rankOutput)
	return nil
}
