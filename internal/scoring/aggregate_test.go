package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

const aggregateResume = `Experienced backend developer with a focus on analytics.
Worked extensively with Python and SQL across reporting teams.`

const aggregateJob = `Looking for a backend developer.
Must have Python experience. SQL reporting is part of the role.`

func TestScore_PartialSkillMatch(t *testing.T) {
	sections := &types.ResumeSections{
		Experience: []string{"Worked extensively with Python and SQL across reporting teams"},
		Education:  []string{"BS Computer Science"},
	}
	reqs := &types.JobRequirements{
		SkillsRequired: []string{"python", "aws"},
	}

	result := Score(aggregateResume, aggregateJob, sections, reqs, Options{})

	// python (1.5) matched, aws (1.5) not: 100 * 1.5/3.0 = 50.
	assert.Equal(t, 50, result.Sections.Skills)
	assert.Equal(t, []string{"aws"}, result.MissingKeywords)
}

func TestScore_FallbackSectionScores(t *testing.T) {
	sections := &types.ResumeSections{}
	reqs := &types.JobRequirements{}

	result := Score(aggregateResume, aggregateJob, sections, reqs, Options{})

	assert.Equal(t, 85, result.Sections.Skills)
	assert.Equal(t, 20, result.Sections.Experience)
	assert.Equal(t, 50, result.Sections.Education)
}

func TestScore_GateCapsOverall(t *testing.T) {
	sections := &types.ResumeSections{
		Experience: []string{"Python data pipelines"},
		Education:  []string{"BS Computer Science"},
	}
	reqs := &types.JobRequirements{
		HardRequirements: []string{"Rust"},
		SkillsRequired:   []string{"python", "sql"},
	}
	// Weight the matched sections heavily so the raw sum clears the cap.
	weights := types.ScoringWeights{Skills: 0.7, Experience: 0, Education: 0.3, Keywords: 0}

	result := Score(aggregateResume, aggregateJob, sections, reqs, Options{
		Weights:      &weights,
		IncludeDebug: true,
	})

	require.NotNil(t, result.Debug)
	assert.Greater(t, result.Debug.WeightedSum, 60.0)
	assert.True(t, result.Debug.GateCapApplied)
	assert.Equal(t, 60, result.Overall)

	require.Len(t, result.Gates, 1)
	assert.False(t, result.Gates[0].Passed)
	assert.Equal(t, "hard_requirement: Rust", result.Gates[0].Rule)
}

func TestScore_GatePassesOnExperienceMention(t *testing.T) {
	sections := &types.ResumeSections{
		Experience: []string{"Built payment services in Java"},
	}
	reqs := &types.JobRequirements{
		HardRequirements: []string{"Java"},
	}

	result := Score(aggregateResume, aggregateJob, sections, reqs, Options{})

	require.Len(t, result.Gates, 1)
	assert.True(t, result.Gates[0].Passed)
}

func TestScore_SkillMatchRecorded(t *testing.T) {
	sections := &types.ResumeSections{}
	reqs := &types.JobRequirements{
		SkillsRequired: []string{"python"},
	}

	result := Score(aggregateResume, aggregateJob, sections, reqs, Options{})

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "python", result.Matches[0].JDItem)
	assert.Equal(t, "skills", result.Matches[0].SourceSection)
	assert.Equal(t, 1.0, result.Matches[0].Similarity)
}

func TestScore_SynonymMatchNotRecordedInMatches(t *testing.T) {
	resume := `Backend developer running container workloads.
Worked with Docker and Python across several product teams.`
	reqs := &types.JobRequirements{
		SkillsRequired: []string{"kubernetes"},
	}
	synonyms := map[string][]string{"kubernetes": {"docker"}}

	result := Score(resume, aggregateJob, &types.ResumeSections{}, reqs, Options{
		Synonyms: synonyms,
	})

	// The synonym satisfies the skills score but not the substring rule,
	// so the requirement stays out of Matches and shows up as missing.
	assert.Equal(t, 100, result.Sections.Skills)
	for _, match := range result.Matches {
		assert.NotEqual(t, "kubernetes", match.JDItem)
	}
	assert.Equal(t, []string{"kubernetes"}, result.MissingKeywords)
}

func TestScore_SuggestionsLeftEmptyForCaller(t *testing.T) {
	result := Score(aggregateResume, aggregateJob, &types.ResumeSections{}, &types.JobRequirements{}, Options{})

	assert.NotNil(t, result.Suggestions.Bullets)
	assert.Empty(t, result.Suggestions.Bullets)
	assert.NotNil(t, result.Suggestions.TopActions)
	assert.Empty(t, result.Suggestions.TopActions)
}

func TestScore_Deterministic(t *testing.T) {
	sections := &types.ResumeSections{
		Experience: []string{"Worked extensively with Python and SQL"},
		Education:  []string{"BA History"},
	}
	reqs := &types.JobRequirements{
		HardRequirements: []string{"Python"},
		SkillsRequired:   []string{"python", "sql", "aws"},
	}

	first := Score(aggregateResume, aggregateJob, sections, reqs, Options{IncludeDebug: true})
	second := Score(aggregateResume, aggregateJob, sections, reqs, Options{IncludeDebug: true})

	assert.Equal(t, first, second)
}

func TestScore_NoDebugByDefault(t *testing.T) {
	result := Score(aggregateResume, aggregateJob, &types.ResumeSections{}, &types.JobRequirements{}, Options{})

	assert.Nil(t, result.Debug)
}
