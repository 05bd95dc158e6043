package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

const pipelineResume = `Summary
Backend engineer with six years building data platforms.

Skills
Python, SQL, Docker, Kubernetes

Experience
- Built streaming pipelines with Python and Kafka at Initech
- Led migration of reporting workloads to PostgreSQL

Education
- BS Computer Science, State University`

const pipelineJob = `We are hiring a backend engineer.
Must have Python experience building data pipelines.
Nice to have Kubernetes.
Requires 4+ years of professional experience.`

func TestRun_EndToEnd(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{
		ResumeText: pipelineResume,
		JobText:    pipelineJob,
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Overall, 0)
	assert.LessOrEqual(t, result.Overall, 100)
	assert.NotEmpty(t, result.Gates)
	assert.NotNil(t, result.Suggestions.TopActions)
	assert.NotNil(t, result.MissingKeywords)
}

func TestRun_EmptyResume(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{JobText: pipelineJob})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume text is empty")
}

func TestRun_EmptyJob(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{ResumeText: pipelineResume})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "job description text is empty")
}

func TestRun_WithNoopExtractor(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{
		ResumeText: pipelineResume,
		JobText:    pipelineJob,
		Extractor:  skills.NoopExtractor{},
	})

	require.NoError(t, err)
	assert.NotNil(t, result)
}

// fixedExtractor returns canned entity lists.
type fixedExtractor struct {
	orgs, locations, dates []string
	err                    error
}

func (f fixedExtractor) ExtractEntities(_ context.Context, _ string) ([]string, []string, []string, error) {
	return f.orgs, f.locations, f.dates, f.err
}

func TestScoreOnce_ExtractorFillsResumeEntities(t *testing.T) {
	_, resumeProcessed, _, _, err := scoreOnce(context.Background(), RunOptions{
		ResumeText: pipelineResume,
		JobText:    pipelineJob,
		Extractor: fixedExtractor{
			orgs:      []string{"Initech"},
			locations: []string{"Austin"},
			dates:     []string{"2019-2024"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Initech"}, resumeProcessed.Entities.Organizations)
	assert.Equal(t, []string{"Austin"}, resumeProcessed.Entities.Locations)
	assert.Equal(t, []string{"2019-2024"}, resumeProcessed.Entities.Dates)
	// Vocabulary skills are filled independently of the extractor.
	assert.Contains(t, resumeProcessed.Entities.Skills, "python")
}

func TestScoreOnce_ExtractorFailureLeavesEntitiesEmpty(t *testing.T) {
	result, resumeProcessed, _, _, err := scoreOnce(context.Background(), RunOptions{
		ResumeText: pipelineResume,
		JobText:    pipelineJob,
		Extractor:  fixedExtractor{err: assert.AnError},
	})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, resumeProcessed.Entities.Organizations)
	assert.Empty(t, resumeProcessed.Entities.Locations)
	assert.Empty(t, resumeProcessed.Entities.Dates)
}

func TestRun_Deterministic(t *testing.T) {
	opts := RunOptions{
		ResumeText:   pipelineResume,
		JobText:      pipelineJob,
		IncludeDebug: true,
	}

	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunBatch_PreservesOrder(t *testing.T) {
	pairs := []types.ScoreRequest{
		{ResumeText: pipelineResume, JobText: pipelineJob},
		{ResumeText: "Plain text resume with Python only and nothing else to say here.", JobText: pipelineJob},
		{ResumeText: pipelineResume, JobText: "Short job description needing nothing in particular from anyone."},
	}

	results, err := RunBatch(context.Background(), pairs, RunOptions{})

	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, result := range results {
		assert.NotNil(t, result)
	}

	// Same input pair scores identically regardless of batch position.
	single, err := Run(context.Background(), RunOptions{ResumeText: pipelineResume, JobText: pipelineJob})
	require.NoError(t, err)
	assert.Equal(t, single, results[0])
}

func TestRunBatch_FailsOnEmptyItem(t *testing.T) {
	pairs := []types.ScoreRequest{
		{ResumeText: pipelineResume, JobText: pipelineJob},
		{ResumeText: "", JobText: pipelineJob},
	}

	_, err := RunBatch(context.Background(), pairs, RunOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pair 1")
}
