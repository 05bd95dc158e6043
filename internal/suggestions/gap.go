// Package suggestions turns scoring output into templated improvement
// advice: gap-driven actions derived from a score, and keyword-driven
// resume bullets.
package suggestions

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	experienceActionThreshold = 70
	keywordsActionThreshold   = 60
	skillsActionThreshold     = 80
	maxNamedMissingSkills     = 3
)

var experienceGapBullets = []string{
	"Quantify the impact of your recent work (throughput, latency, revenue, users served).",
	"Lead each experience entry with an action verb and the technology used.",
}

// FromScore derives gap-closing suggestions from a finished score. Each
// trigger is independent; a result can accumulate several actions.
func FromScore(result *types.ScoreResult) types.Suggestions {
	suggestions := types.Suggestions{
		Bullets:    []string{},
		TopActions: []string{},
	}

	if len(result.MissingKeywords) > 0 {
		named := result.MissingKeywords
		if len(named) > maxNamedMissingSkills {
			named = named[:maxNamedMissingSkills]
		}
		suggestions.TopActions = append(suggestions.TopActions,
			fmt.Sprintf("Add the missing skills the job asks for: %s.", strings.Join(named, ", ")))
		suggestions.Bullets = append(suggestions.Bullets,
			fmt.Sprintf("Worked with %s in a project or professional setting.", result.MissingKeywords[0]))
	}

	if result.Sections.Experience < experienceActionThreshold {
		suggestions.TopActions = append(suggestions.TopActions,
			"Align your experience entries with the job's stated requirements.")
		suggestions.Bullets = append(suggestions.Bullets, experienceGapBullets...)
	}

	if result.Sections.Keywords < keywordsActionThreshold {
		suggestions.TopActions = append(suggestions.TopActions,
			"Mirror more of the job description's terminology in your resume.")
	}

	if result.Sections.Skills < skillsActionThreshold {
		suggestions.TopActions = append(suggestions.TopActions,
			"Expand your skills section to cover the required technologies.")
	}

	return suggestions
}
