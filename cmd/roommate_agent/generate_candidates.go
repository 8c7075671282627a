package main

import (
	"fmt"
	"os"

	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/types"
	schemafiles "github.com/jonathan/roommate-matcher/schemas"
	"github.com/spf13/cobra"
)

var generateCandidatesCmd = &cobra.Command{
	Use:   "generate-candidates",
	Short: "Generate a mock candidate pool",
	Long:  "Writes a CandidateList JSON of randomly assembled roommate candidates. The same seed always produces the same pool.",
	RunE:  runGenerateCandidates,
}

var (
	generateCount  int
	generateSeed   int64
	generateOutput string
)

func init() {
	generateCandidatesCmd.Flags().IntVarP(&generateCount, "count", "n", 20, "Number of candidates")
	generateCandidatesCmd.Flags().Int64Var(&generateSeed, "seed", 1, "Random seed")
	generateCandidatesCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to output candidates JSON file (required)")

	if err := generateCandidatesCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCandidatesCmd)
}

func runGenerateCandidates(_ *cobra.Command, _ []string) error {
	if generateCount < 1 {
		return fmt.Errorf("count must be positive, got %d", generateCount)
	}

	pool := types.CandidateList{Candidates: candidates.Generate(generateCount, generateSeed)}
	if err := writeJSON(generateOutput, pool, schemafiles.Candidates); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully generated %d candidates to %s\n", len(pool.Candidates), generateOutput)
	return nil
}
