package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-scorer/internal/similarity"
	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/textproc"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Options carries the externally configurable inputs to one scoring
// call. The zero value means documented defaults: DefaultWeights and an
// empty synonym map.
type Options struct {
	Weights      *types.ScoringWeights
	Synonyms     map[string][]string
	IncludeDebug bool
}

// Score aggregates section scores into a ScoreResult for one resume
// against one job description. The weighted sum uses raw, unrounded
// section scores; rounding happens only on the values placed into the
// output. A failed gate caps the overall score at 60 after the weighted
// sum and before rounding. Suggestions are filled in by the caller.
func Score(resumeText, jobText string, sections *types.ResumeSections, reqs *types.JobRequirements, opts Options) *types.ScoreResult {
	weights := types.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}

	resumeProcessed := textproc.Process(resumeText)
	jobProcessed := textproc.Process(jobText)
	resumeSkills := skills.Extract(resumeProcessed)

	skillsScore := clampScore(scoreSkills(reqs.SkillsRequired, resumeSkills, opts.Synonyms))
	experienceScore, pairs := scoreExperience(sections.Experience, reqs.HardRequirements)
	experienceScore = clampScore(experienceScore)
	educationScore := clampScore(scoreEducation(sections.Education))
	keywordsScore := clampScore(scoreKeywords(resumeProcessed.Keywords, jobProcessed.Keywords))

	weightedSum := skillsScore*weights.Skills +
		experienceScore*weights.Experience +
		educationScore*weights.Education +
		keywordsScore*weights.Keywords

	gates := evaluateGates(reqs, resumeSkills, sections.Experience)

	overall := clampScore(weightedSum)
	gateCapApplied := false
	if anyGateFailed(gates) && overall > gateCap {
		overall = gateCap
		gateCapApplied = true
	}

	result := &types.ScoreResult{
		Overall: int(math.Round(overall)),
		Sections: types.SectionScores{
			Skills:     int(math.Round(skillsScore)),
			Experience: int(math.Round(experienceScore)),
			Education:  int(math.Round(educationScore)),
			Keywords:   int(math.Round(keywordsScore)),
		},
		Gates:           gates,
		Matches:         collectMatches(reqs, resumeSkills, sections.Experience, pairs),
		MissingKeywords: missingKeywords(reqs.SkillsRequired, resumeSkills),
		Suggestions: types.Suggestions{
			Bullets:    []string{},
			TopActions: []string{},
		},
	}

	if opts.IncludeDebug {
		result.Debug = &types.ScoreDebug{
			RawSections: map[string]float64{
				"skills":     skillsScore,
				"experience": experienceScore,
				"education":  educationScore,
				"keywords":   keywordsScore,
			},
			WeightedSum:     weightedSum,
			GateCapApplied:  gateCapApplied,
			ResumeKeywords:  resumeProcessed.Keywords,
			JobKeywords:     jobProcessed.Keywords,
			ResumeSkills:    resumeSkills,
			ExperienceCount: len(sections.Experience),
		}
	}

	return result
}

// collectMatches records one entry per required skill matched against a
// resume skill, then one entry per (hard requirement, experience line)
// pair whose token overlap exceeds 0.5. Skill matching here uses the
// same substring-only rule as missingKeywords, so every required skill
// lands in exactly one of the two lists.
func collectMatches(reqs *types.JobRequirements, resumeSkills, experience []string, pairs []experiencePair) []types.MatchResult {
	matches := []types.MatchResult{}

	for _, req := range reqs.SkillsRequired {
		for _, skill := range resumeSkills {
			if substringMatches(req, skill) {
				matches = append(matches, types.MatchResult{
					JDItem:         req,
					MatchedPhrases: []string{},
					Similarity:     1.0,
					SourceSection:  "skills",
				})
				break
			}
		}
	}

	for _, pair := range pairs {
		if pair.overlap > experienceMatchCutoff {
			expLine := experience[pair.expIndex]
			req := reqs.HardRequirements[pair.reqIndex]
			matches = append(matches, types.MatchResult{
				JDItem:         req,
				MatchedPhrases: similarity.Calculate(expLine, req).MatchedPhrases,
				Similarity:     pair.overlap,
				SourceSection:  fmt.Sprintf("experience-%d", pair.expIndex),
			})
		}
	}

	return matches
}

// missingKeywords returns the required skills no resume skill matches
// via the substring-either-direction rule. Always a subset of
// SkillsRequired.
func missingKeywords(required, resumeSkills []string) []string {
	missing := []string{}
	for _, req := range required {
		matched := false
		for _, skill := range resumeSkills {
			if substringMatches(req, skill) {
				matched = true
				break
			}
		}
		if !matched {
			missing = append(missing, req)
		}
	}
	return missing
}
