package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/server"
	"github.com/jonathan/resume-scorer/internal/skills"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resumes against job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Both are optional: without a database the /runs endpoints are
	// unavailable, without an API key entity extraction is skipped.
	databaseURL := os.Getenv("DATABASE_URL")

	var extractor skills.EntityExtractor
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), apiKey)
		if err != nil {
			fmt.Printf("Warning: failed to create LLM client: %v\n", err)
		} else {
			defer func() { _ = client.Close() }()
			extractor = llm.NewGeminiExtractor(client)
		}
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		Extractor:   extractor,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
