package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Requirement extraction is pattern-driven and the pattern order is the
// contract: hard requirements collect every match of every pattern in
// list order, and the first experience-years pattern to match wins.
// Reordering any of these lists changes extracted results.
var (
	hardPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)must have[:\s]+([^.!?\n]+)`),
		regexp.MustCompile(`(?i)required:\s*([^.!?\n]+)`),
		regexp.MustCompile(`(?i)mandatory[:\s]+([^.!?\n]+)`),
		regexp.MustCompile(`(?i)essential[:\s]+([^.!?\n]+)`),
		regexp.MustCompile(`(?i)(minimum (?:of )?\d+\+? years?[^.!?\n]*)`),
	}

	nicePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)nice to have[:\s]+([^.!?\n]+)`),
		regexp.MustCompile(`(?i)preferred[:\s]+([^.!?\n]+)`),
		regexp.MustCompile(`(?i)bonus[:\s]+([^.!?\n]+)`),
		regexp.MustCompile(`(?i)plus[:\s]+([^.!?\n]+)`),
	}

	yearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?(?:\s+of)?[^.!?\n]*?experience`),
		regexp.MustCompile(`(?i)minimum (?:of )?(\d+)\+?\s*years?`),
		regexp.MustCompile(`(?i)at least (\d+)\+?\s*years?`),
	}
)

// ExtractRequirements pulls hard requirements, nice-to-haves, and the
// required years of experience from job-description text. Hard
// requirements are appended in pattern order then appearance order,
// without deduplication. SkillsRequired is left empty here; the caller
// populates it from the skill recognizer over the whole text.
func ExtractRequirements(jobText string) *types.JobRequirements {
	reqs := &types.JobRequirements{
		HardRequirements: []string{},
		NiceToHave:       []string{},
		SkillsRequired:   []string{},
	}

	for _, pattern := range hardPatterns {
		for _, m := range pattern.FindAllStringSubmatch(jobText, -1) {
			if clause := strings.TrimSpace(m[1]); clause != "" {
				reqs.HardRequirements = append(reqs.HardRequirements, clause)
			}
		}
	}

	for _, pattern := range nicePatterns {
		for _, m := range pattern.FindAllStringSubmatch(jobText, -1) {
			if clause := strings.TrimSpace(m[1]); clause != "" {
				reqs.NiceToHave = append(reqs.NiceToHave, clause)
			}
		}
	}

	reqs.ExperienceYears = extractExperienceYears(jobText)

	return reqs
}

// extractExperienceYears returns the first numeric capture across the
// years patterns, evaluated in fixed order, or nil when none match.
func extractExperienceYears(jobText string) *int {
	for _, pattern := range yearsPatterns {
		if m := pattern.FindStringSubmatch(jobText); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				return &years
			}
		}
	}
	return nil
}
