package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/jonathan/roommate-matcher/internal/candidates"
	"github.com/jonathan/roommate-matcher/internal/logging"
	"github.com/jonathan/roommate-matcher/internal/observability"
	"github.com/jonathan/roommate-matcher/internal/schemas"
	"github.com/jonathan/roommate-matcher/internal/types"
)

// writeJSON writes v as indented JSON to path, creating parent directories.
// When schemaName is set the written file is checked against that schema;
// a mismatch is reported as a warning only.
func writeJSON(path string, v any, schemaName string) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	if schemaName != "" {
		if err := validateOutput(schemaName, path); err != nil {
			logging.Warn().Err(err).Str("file", path).Msg("output validation failed")
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}
	return nil
}

// validateOutput prefers a schema file found on disk under schemas/ so local
// edits take effect without a rebuild, and falls back to the embedded copy.
func validateOutput(schemaName, path string) error {
	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName)); schemaPath != "" {
		return schemas.ValidateJSON(schemaPath, path)
	}
	return schemas.ValidateFile(schemaName, path)
}

// loadCandidatePool reads and normalizes a candidate pool.
func loadCandidatePool(path string) (*types.CandidateList, error) {
	pool, err := candidates.LoadCandidates(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	if err := candidates.Normalize(pool); err != nil {
		return nil, fmt.Errorf("invalid candidates in %s: %w", path, err)
	}
	return pool, nil
}

func printer() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}

// validateInput rejects an input file that does not match its schema.
func validateInput(schemaName, path string) error {
	if err := schemas.ValidateFile(schemaName, path); err != nil {
		return fmt.Errorf("invalid input %s: %w", path, err)
	}
	return nil
}
