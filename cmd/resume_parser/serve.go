package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/server"
)

const defaultPort = 8080

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the resume parsing HTTP API",
	Long:  "Serve starts the HTTP API exposing POST /parse (file upload), POST /score, and GET /health.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{Port: servePort}
	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port})
	if err := srv.Start(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
