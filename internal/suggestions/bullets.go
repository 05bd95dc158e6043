package suggestions

import (
	"fmt"
	"math/rand"
	"time"
)

// Rand supplies the index for random template selection. *rand.Rand
// satisfies it; tests inject a fixed implementation.
type Rand interface {
	Intn(n int) int
}

const (
	maxKeywordBullets = 3
	maxTotalBullets   = 5
)

var levelVerbs = map[string][]string{
	"entry":  {"Assisted with", "Contributed to", "Supported", "Participated in"},
	"mid":    {"Developed", "Implemented", "Built", "Optimized"},
	"senior": {"Led", "Architected", "Drove", "Spearheaded"},
}

var levelImpacts = map[string][]string{
	"entry": {
		"while learning team processes and tooling",
		"under the guidance of senior engineers",
		"as part of a cross-functional team",
	},
	"mid": {
		"improving delivery speed by a measurable margin",
		"reducing defects reported in production",
		"serving thousands of daily users",
	},
	"senior": {
		"cutting infrastructure costs across the organization",
		"mentoring engineers while delivering on schedule",
		"setting the technical direction for the team",
	},
}

var genericBullets = []string{
	"Collaborated with stakeholders to translate requirements into deliverables.",
	"Maintained and improved existing systems with a focus on reliability.",
}

// Generate builds up to three keyword-based bullets for the given
// experience level, pads with two generic bullets when fewer were
// produced, and returns at most five. Unknown levels fall back to
// "mid". The impact phrase is the only randomized choice; verbs cycle
// deterministically through the level's list.
func Generate(keywords []string, level string, rng Rand) []string {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	verbs, ok := levelVerbs[level]
	if !ok {
		verbs = levelVerbs["mid"]
		level = "mid"
	}
	impacts := levelImpacts[level]

	bullets := []string{}
	for i, kw := range keywords {
		if i >= maxKeywordBullets {
			break
		}
		verb := verbs[i%len(verbs)]
		impact := impacts[rng.Intn(len(impacts))]
		bullets = append(bullets, fmt.Sprintf("%s %s %s.", verb, kw, impact))
	}

	if len(bullets) < maxKeywordBullets {
		bullets = append(bullets, genericBullets...)
	}
	if len(bullets) > maxTotalBullets {
		bullets = bullets[:maxTotalBullets]
	}
	return bullets
}
