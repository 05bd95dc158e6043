package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long: `Scores a resume against a job description and prints section scores,
hard-requirement gate results, missing keywords, and improvement suggestions.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScoreCmd,
}

var (
	scoreConfigPath  string
	scoreResume      string
	scoreJob         string
	scoreJobURL      string
	scoreAPIKey      string
	scoreDatabaseURL string
	scoreVerbose     bool
	scoreDebug       bool
	scoreJSON        bool
)

func init() {
	// Config file flag (processed first)
	scoreCommand.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	scoreCommand.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume file (.txt, .md, .pdf, .docx)")
	scoreCommand.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	scoreCommand.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	scoreCommand.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")
	scoreCommand.Flags().BoolVar(&scoreDebug, "debug", false, "Include intermediate values in the score output")
	scoreCommand.Flags().BoolVar(&scoreJSON, "json", false, "Print the full score result as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	scoreCommand.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API Key for entity extraction (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for run persistence
	scoreCommand.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if scoreConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if scoreVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", scoreConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = scoreResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = scoreJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = scoreJobURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = scoreAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = scoreDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = scoreDebug
	}

	// Step 3: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 4: API key and database URL fall back to env vars; both optional
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 5: Ingest resume and job texts
	resumeText, _, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	var jobText string
	if cfg.Job != "" {
		jobText, _, err = ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting: %w", err)
		}
	} else {
		jobText, _, err = ingestion.IngestFromURL(ctx, cfg.JobURL, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	// Step 6: Entity extraction is best-effort and only set up when a key exists
	var extractor skills.EntityExtractor
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			fmt.Printf("Warning: failed to create LLM client: %v\n", err)
		} else {
			defer func() { _ = client.Close() }()
			extractor = llm.NewGeminiExtractor(client)
		}
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		ResumeText:   resumeText,
		JobText:      jobText,
		Weights:      cfg.Weights,
		Synonyms:     cfg.Synonyms,
		Extractor:    extractor,
		IncludeDebug: cfg.Debug,
		Verbose:      cfg.Verbose,
		DatabaseURL:  cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	if scoreJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printScoreSummary(result)
	return nil
}

// printScoreSummary prints the compact non-verbose result.
func printScoreSummary(result *types.ScoreResult) {
	fmt.Printf("Overall: %d/100\n", result.Overall)
	fmt.Printf("  Skills:     %d\n", result.Sections.Skills)
	fmt.Printf("  Experience: %d\n", result.Sections.Experience)
	fmt.Printf("  Education:  %d\n", result.Sections.Education)
	fmt.Printf("  Keywords:   %d\n", result.Sections.Keywords)

	for _, gate := range result.Gates {
		if !gate.Passed {
			fmt.Printf("Gate failed: %s (%s)\n", gate.Rule, gate.Details)
		}
	}

	if len(result.MissingKeywords) > 0 {
		fmt.Printf("Missing keywords: %s\n", strings.Join(result.MissingKeywords, ", "))
	}
	for _, action := range result.Suggestions.TopActions {
		fmt.Printf("- %s\n", action)
	}
}
