// Package main provides the entry point for the resume parser CLI and HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Heuristic resume parser and ATS scorer",
	Long:  "resume_parser converts PDF, DOCX, and TXT resumes into a normalized JSON record and scores it against ATS completeness and readability rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
