package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/preference"
	schemafiles "github.com/jonathan/roommate-matcher/schemas"
	"github.com/spf13/cobra"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Seed a profile from onboarding answers",
	Long:  "Adds small initial weights to a PreferenceProfile from onboarding quiz answers. Existing weights are kept and added to.",
	RunE:  runBootstrap,
}

var (
	bootstrapProfile string
	bootstrapAnswers string
	bootstrapOutput  string
)

func init() {
	bootstrapCmd.Flags().StringVarP(&bootstrapProfile, "profile", "p", "", "Path to input PreferenceProfile JSON file (omit to start empty)")
	bootstrapCmd.Flags().StringVarP(&bootstrapAnswers, "answers", "a", "", "Path to onboarding answers JSON file (required)")
	bootstrapCmd.Flags().StringVarP(&bootstrapOutput, "out", "o", "", "Path to output PreferenceProfile JSON file (required)")

	if err := bootstrapCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}
	if err := bootstrapCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(bootstrapCmd)
}

func runBootstrap(_ *cobra.Command, _ []string) error {
	profile := preference.Initialize()
	if bootstrapProfile != "" {
		loaded, err := candidates.LoadProfile(bootstrapProfile)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		profile = loaded
	}

	if err := validateInput(schemafiles.Onboarding, bootstrapAnswers); err != nil {
		return err
	}
	answers, err := candidates.LoadOnboardingAnswers(bootstrapAnswers)
	if err != nil {
		return fmt.Errorf("failed to load onboarding answers: %w", err)
	}

	updated := preference.CapWeights(preference.Bootstrap(profile, answers), cfg.Engine.WeightCap)
	if err := writeJSON(bootstrapOutput, updated, schemafiles.PreferenceProfile); err != nil {
		return err
	}

	if verbose {
		printer().PrintProfile(updated)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully bootstrapped profile with %d features to %s\n", updated.Size(), bootstrapOutput)
	return nil
}
