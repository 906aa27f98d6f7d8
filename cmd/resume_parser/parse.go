package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// parseConcurrency bounds how many files extract at once in batch mode.
const parseConcurrency = 4

var parseCmd = &cobra.Command{
	Use:   "parse <file> [file...]",
	Short: "Parse resume files into normalized JSON",
	Long:  "Parse one or more resume files (PDF, DOCX, or TXT) into normalized resume JSON. Multiple files are processed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseOutputFile string
	parseOutputDir  string
	parseFileType   string
	parseWithScore  bool
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (single input only; default stdout)")
	parseCmd.Flags().StringVar(&parseOutputDir, "out-dir", "", "Directory for output JSON files (required for multiple inputs)")
	parseCmd.Flags().StringVar(&parseFileType, "type", "", "Declared file type (pdf, docx, txt); default derived from extension")
	parseCmd.Flags().BoolVar(&parseWithScore, "score", false, "Attach an ATS score to each parsed record")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted summary per file")

	rootCmd.AddCommand(parseCmd)
}

// parseOutput is the JSON document written per input file.
type parseOutput struct {
	Resume *types.Resume      `json:"resume"`
	Score  *types.ScoreResult `json:"score,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	if len(args) > 1 && parseOutputFile != "" {
		return fmt.Errorf("--out only works with a single input; use --out-dir for multiple files")
	}
	if len(args) > 1 && parseOutputDir == "" {
		return fmt.Errorf("--out-dir is required when parsing multiple files")
	}

	registry := extract.NewRegistry()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 1 {
		return parseOne(ctx, registry, args[0], parseOutputFile)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parseConcurrency)
	for _, path := range args {
		g.Go(func() error {
			out := filepath.Join(parseOutputDir, jsonName(path))
			return parseOne(ctx, registry, path, out)
		})
	}
	return g.Wait()
}

// parseOne extracts, parses, and writes one file. Empty outPath writes to
// stdout.
func parseOne(ctx context.Context, registry *extract.Registry, path, outPath string) error {
	fileType := parseFileType
	if fileType == "" {
		fileType = extract.DetectType(path)
	}

	text, err := extract.ExtractText(ctx, registry, path, fileType, extract.Options{})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	resume := parsing.Parse(text)

	output := parseOutput{Resume: resume}
	if parseWithScore {
		result := scoring.Score(resume)
		output.Score = &result
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// The emitted record should always conform to the published schema;
	// a mismatch is a bug worth surfacing, not a reason to fail the parse.
	resumeBytes, err := json.Marshal(resume)
	if err == nil {
		if err := schemas.ValidateResumeJSON(resumeBytes); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: output does not validate against the resume schema: %v\n", err)
		}
	}

	if outPath == "" {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	} else {
		if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Parsed %s -> %s\n", path, outPath)
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResume(resume)
		if output.Score != nil {
			printer.PrintScore(*output.Score)
		}
	}

	return nil
}

// jsonName maps an input file name to its output name, e.g. "cv.pdf" ->
// "cv.json".
func jsonName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".json"
}
