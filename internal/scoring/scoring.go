// Package scoring combines section scores into an overall compatibility
// score and applies hard-requirement gating. Every function degrades on
// missing data to a documented fallback score instead of failing.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/similarity"
	"github.com/jonathan/resume-scorer/internal/textproc"
)

// Fallback scores for sections with no data to evaluate.
const (
	emptyRequiredSkillsScore = 85.0
	noExperienceScore        = 20.0
	noEducationScore         = 50.0
	relevantEducationScore   = 85.0
	otherEducationScore      = 70.0
)

// Experience scoring bonuses.
const (
	experienceCountBonusAt = 3
	experienceCountBonus   = 10.0
	strongPairThreshold    = 0.7
	strongPairBonus        = 15.0
	experienceMatchCutoff  = 0.5
)

// highPrioritySkills carry weight 1.5 in the skills score; everything
// else weighs 1.0.
var highPrioritySkills = map[string]bool{
	"javascript": true,
	"python":     true,
	"react":      true,
	"node":       true,
	"aws":        true,
	"sql":        true,
}

// educationSignals mark an education entry as directly relevant.
var educationSignals = []string{"computer", "engineering", "science", "technology"}

// skillMatches reports whether a required skill is satisfied by a resume
// skill: equality, case-insensitive substring in either direction, or a
// synonym from the synonym map.
func skillMatches(required, resumeSkill string, synonyms map[string][]string) bool {
	reqLower := strings.ToLower(required)
	resLower := strings.ToLower(resumeSkill)

	if reqLower == resLower {
		return true
	}
	if strings.Contains(resLower, reqLower) || strings.Contains(reqLower, resLower) {
		return true
	}
	for _, syn := range synonyms[reqLower] {
		if strings.ToLower(syn) == resLower {
			return true
		}
	}
	return false
}

// substringMatches applies only the substring-either-direction rule,
// without synonyms. Missing-keyword reporting uses this narrower rule.
func substringMatches(required, resumeSkill string) bool {
	reqLower := strings.ToLower(required)
	resLower := strings.ToLower(resumeSkill)
	return reqLower == resLower ||
		strings.Contains(resLower, reqLower) ||
		strings.Contains(reqLower, resLower)
}

// scoreSkills computes the weighted fraction of required skills matched
// by the resume. An empty requirement set scores a fixed 85.
func scoreSkills(required, resumeSkills []string, synonyms map[string][]string) float64 {
	if len(required) == 0 {
		return emptyRequiredSkillsScore
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	for _, req := range required {
		weight := 1.0
		if highPrioritySkills[strings.ToLower(req)] {
			weight = 1.5
		}
		totalWeight += weight

		for _, skill := range resumeSkills {
			if skillMatches(req, skill, synonyms) {
				matchedWeight += weight
				break
			}
		}
	}

	if totalWeight == 0 {
		return 0
	}
	return 100 * matchedWeight / totalWeight
}

// experiencePair holds the overlap similarity for one (hard requirement,
// experience line) pair.
type experiencePair struct {
	reqIndex int
	expIndex int
	overlap  float64
}

// scoreExperience averages token overlap across every (experience line,
// hard requirement) pair, with bonuses for breadth (three or more
// entries) and depth (any strongly matching pair). No experience lines
// scores a fixed 20.
func scoreExperience(experience, hardRequirements []string) (float64, []experiencePair) {
	if len(experience) == 0 {
		return noExperienceScore, nil
	}

	pairs := make([]experiencePair, 0, len(experience)*len(hardRequirements))
	sum := 0.0
	strongest := 0.0
	for ei, exp := range experience {
		expTokens := textproc.Tokenize(exp)
		for ri, req := range hardRequirements {
			ov := similarity.Overlap(expTokens, textproc.Tokenize(req))
			pairs = append(pairs, experiencePair{reqIndex: ri, expIndex: ei, overlap: ov})
			sum += ov
			if ov > strongest {
				strongest = ov
			}
		}
	}

	denom := float64(len(experience)) * float64(max(len(hardRequirements), 1))
	score := sum / denom * 100

	if len(experience) >= experienceCountBonusAt {
		score += experienceCountBonus
	}
	if strongest > strongPairThreshold {
		score += strongPairBonus
	}
	if score > 100 {
		score = 100
	}
	return score, pairs
}

// scoreEducation is neutral (50) with no entries, 85 when any entry
// names a technical field, 70 otherwise.
func scoreEducation(education []string) float64 {
	if len(education) == 0 {
		return noEducationScore
	}
	for _, entry := range education {
		lower := strings.ToLower(entry)
		for _, signal := range educationSignals {
			if strings.Contains(lower, signal) {
				return relevantEducationScore
			}
		}
	}
	return otherEducationScore
}

// scoreKeywords measures what fraction of the job description's top
// terms also rank among the resume's top terms.
func scoreKeywords(resumeKeywords, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return 0
	}

	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeSet[kw] = true
	}

	covered := 0
	for _, kw := range jobKeywords {
		if resumeSet[kw] {
			covered++
		}
	}
	return float64(covered) / float64(len(jobKeywords)) * 100
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
