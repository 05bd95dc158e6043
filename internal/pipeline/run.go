// Package pipeline provides the high-level orchestration for scoring a
// resume against a job description.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/suggestions"
	"github.com/jonathan/resume-scorer/internal/textproc"
	"github.com/jonathan/resume-scorer/internal/types"
)

// RunOptions holds configuration for one scoring run. ResumeText and
// JobText are already plain text; file and URL ingestion happen before
// the pipeline.
type RunOptions struct {
	ResumeText   string
	JobText      string
	Weights      *types.ScoringWeights
	Synonyms     map[string][]string
	Extractor    skills.EntityExtractor
	IncludeDebug bool
	Verbose      bool

	// Database is an already-open connection, preferred when set; its
	// lifecycle belongs to the caller. DatabaseURL opens a connection
	// for just this run.
	Database    *db.DB
	DatabaseURL string
}

// maxConcurrentScores bounds batch parallelism.
const maxConcurrentScores = 4

// Run executes the full scoring pipeline: section segmentation,
// requirement extraction, skill recognition, scoring, and suggestion
// generation. When a database URL is configured the run and its result
// are persisted; persistence failures warn and continue, they never
// fail the run.
func Run(ctx context.Context, opts RunOptions) (*types.ScoreResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	database := opts.Database
	if database == nil && opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without persistence...\n")
		} else {
			defer database.Close()
		}
	}

	result, resumeProcessed, sections, reqs, err := scoreOnce(ctx, opts)
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintSections(sections)
		printer.PrintRequirements(reqs)
		printer.PrintEntities(&resumeProcessed.Entities)
		printer.PrintScoreResult(result)
	}

	if database != nil {
		persistRun(ctx, database, opts, result)
	}

	return result, nil
}

// RunBatch scores each resume/job pair concurrently and returns results
// in input order. Batch runs are never persisted.
func RunBatch(ctx context.Context, pairs []types.ScoreRequest, opts RunOptions) ([]*types.ScoreResult, error) {
	results := make([]*types.ScoreResult, len(pairs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)

	for i, pair := range pairs {
		g.Go(func() error {
			itemOpts := opts
			itemOpts.ResumeText = pair.ResumeText
			itemOpts.JobText = pair.JobText
			result, _, _, _, err := scoreOnce(gCtx, itemOpts)
			if err != nil {
				return fmt.Errorf("scoring pair %d failed: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// scoreOnce runs the pure stages for a single pair. The returned
// ProcessedText is the resume with its recognized skills and any
// best-effort extracted entities filled in.
func scoreOnce(ctx context.Context, opts RunOptions) (*types.ScoreResult, *types.ProcessedText, *types.ResumeSections, *types.JobRequirements, error) {
	if opts.ResumeText == "" {
		return nil, nil, nil, nil, fmt.Errorf("resume text is empty")
	}
	if opts.JobText == "" {
		return nil, nil, nil, nil, fmt.Errorf("job description text is empty")
	}

	resumeProcessed := textproc.Process(opts.ResumeText)
	resumeProcessed.Entities.Skills = skills.Extract(resumeProcessed)

	sections := parsing.SegmentSections(opts.ResumeText)
	reqs := parsing.ExtractRequirements(opts.JobText)
	reqs.SkillsRequired = skills.Extract(textproc.Process(opts.JobText))

	if opts.Extractor != nil {
		// Best effort: entity extraction never fails the run.
		orgs, locations, dates, err := opts.Extractor.ExtractEntities(ctx, opts.ResumeText)
		if err != nil {
			fmt.Printf("Warning: entity extraction failed: %v\n", err)
		} else {
			resumeProcessed.Entities.Organizations = orgs
			resumeProcessed.Entities.Locations = locations
			resumeProcessed.Entities.Dates = dates
		}
	}

	result := scoring.Score(opts.ResumeText, opts.JobText, sections, reqs, scoring.Options{
		Weights:      opts.Weights,
		Synonyms:     opts.Synonyms,
		IncludeDebug: opts.IncludeDebug,
	})
	result.Suggestions = suggestions.FromScore(result)

	return result, resumeProcessed, sections, reqs, nil
}

// persistRun records the run, its source texts, and the result. Every
// step warns and continues on failure.
func persistRun(ctx context.Context, database *db.DB, opts RunOptions, result *types.ScoreResult) {
	runID, err := database.CreateRun(ctx)
	if err != nil {
		fmt.Printf("Warning: Failed to create run record: %v\n", err)
		return
	}
	if opts.Verbose {
		fmt.Printf("Created run: %s\n", runID)
	}

	if err := database.SaveSourceTexts(ctx, runID, opts.ResumeText, opts.JobText); err != nil {
		fmt.Printf("Warning: Failed to save source texts: %v\n", err)
	}
	if err := database.SaveResult(ctx, runID, result); err != nil {
		fmt.Printf("Warning: Failed to save score result: %v\n", err)
	}
	if err := database.CompleteRun(ctx, runID, db.RunStatusCompleted); err != nil {
		fmt.Printf("Warning: Failed to complete run: %v\n", err)
	}
}
