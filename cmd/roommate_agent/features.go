package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/preference"
	"github.com/jonathan/roommate-matcher/internal/types"
	"github.com/spf13/cobra"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the strongest learned features of a category",
	Long:  "Prints the most liked (or with --bottom, the most disliked) features of one profile category.",
	RunE:  runFeatures,
}

var (
	featuresProfile  string
	featuresCategory string
	featuresLimit    int
	featuresBottom   bool
)

func init() {
	featuresCmd.Flags().StringVarP(&featuresProfile, "profile", "p", "", "Path to input PreferenceProfile JSON file (required)")
	featuresCmd.Flags().StringVar(&featuresCategory, "category", "", "lifestyle, interests, studyHabits, personalityTraits or locationPreferences (required)")
	featuresCmd.Flags().IntVarP(&featuresLimit, "limit", "n", 0, "Maximum number of features (defaults to engine.feature_limit)")
	featuresCmd.Flags().BoolVar(&featuresBottom, "bottom", false, "List the most disliked features instead")

	if err := featuresCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := featuresCmd.MarkFlagRequired("category"); err != nil {
		panic(fmt.Sprintf("failed to mark category flag as required: %v", err))
	}

	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, _ []string) error {
	category, err := types.ParseCategory(featuresCategory)
	if err != nil {
		return err
	}

	limit := cfg.Engine.FeatureLimit
	if cmd.Flags().Changed("limit") {
		limit = featuresLimit
	}

	profile, err := candidates.LoadProfile(featuresProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	var features []types.FeatureWeight
	if featuresBottom {
		features = preference.BottomFeatures(profile, category, limit)
	} else {
		features = preference.TopFeatures(profile, category, limit)
	}

	if verbose {
		printer().PrintFeatures(category, featuresBottom, features)
		return nil
	}
	for _, f := range features {
		_, _ = fmt.Fprintf(os.Stdout, "%s\t%.4f\n", f.Feature, f.Weight)
	}
	return nil
}
