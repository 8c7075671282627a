package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/preference"
	schemafiles "github.com/jonathan/roommate-matcher/schemas"
	"github.com/spf13/cobra"
)

var amplifyCmd = &cobra.Command{
	Use:   "amplify",
	Short: "Sharpen the strongest likes and dislikes of a profile",
	Long:  "Multiplies the three strongest positive and three strongest negative weights of every category by 1.5.",
	RunE:  runAmplify,
}

var (
	amplifyProfile string
	amplifyOutput  string
)

func init() {
	amplifyCmd.Flags().StringVarP(&amplifyProfile, "profile", "p", "", "Path to input PreferenceProfile JSON file (required)")
	amplifyCmd.Flags().StringVarP(&amplifyOutput, "out", "o", "", "Path to output PreferenceProfile JSON file (defaults to --profile)")

	if err := amplifyCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(amplifyCmd)
}

func runAmplify(_ *cobra.Command, _ []string) error {
	profile, err := candidates.LoadProfile(amplifyProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	amplified := preference.CapWeights(preference.Amplify(profile), cfg.Engine.WeightCap)

	out := amplifyOutput
	if out == "" {
		out = amplifyProfile
	}
	if err := writeJSON(out, amplified, schemafiles.PreferenceProfile); err != nil {
		return err
	}

	if verbose {
		printer().PrintProfile(amplified)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully amplified profile to %s\n", out)
	return nil
}
