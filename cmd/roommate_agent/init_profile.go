package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/preference"
	schemafiles "github.com/jonathan/roommate-matcher/schemas"
	"github.com/spf13/cobra"
)

var initProfileCmd = &cobra.Command{
	Use:   "init-profile",
	Short: "Write an empty preference profile",
	Long:  "Creates a PreferenceProfile JSON file with all five categories empty, the starting point for swipe, bootstrap and amplify.",
	RunE:  runInitProfile,
}

var initProfileOutput string

func init() {
	initProfileCmd.Flags().StringVarP(&initProfileOutput, "out", "o", "", "Path to output PreferenceProfile JSON file (required)")

	if err := initProfileCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(initProfileCmd)
}

func runInitProfile(_ *cobra.Command, _ []string) error {
	if err := writeJSON(initProfileOutput, preference.Initialize(), schemafiles.PreferenceProfile); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully initialized empty profile at %s\n", initProfileOutput)
	return nil
}
