package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a normalized resume JSON against the ATS rubric",
	Long:  "Score reads a normalized resume JSON file (as produced by parse) and prints its 0-100 ATS score with actionable feedback.",
	RunE:  runScore,
}

var (
	scoreInputFile  string
	scoreOutputFile string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score summary")
	_ = scoreCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(scoreInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	resume, err := decodeResume(data)
	if err != nil {
		return err
	}

	result := scoring.Score(resume)

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if scoreOutputFile == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	} else {
		if err := os.WriteFile(scoreOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintScore(result)
	}

	return nil
}

// decodeResume accepts both a bare resume document and the wrapped
// {"resume": ...} form that parse emits.
func decodeResume(data []byte) (*types.Resume, error) {
	var wrapped struct {
		Resume *types.Resume `json:"resume"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Resume != nil {
		return wrapped.Resume, nil
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}
