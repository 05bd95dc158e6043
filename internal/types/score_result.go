package types

// ScoringWeights controls the relative contribution of each section score
// to the overall score. Weights are not required to sum to 1.
type ScoringWeights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Keywords   float64 `json:"keywords"`
}

// DefaultWeights returns the documented default scoring weights.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Skills:     0.4,
		Experience: 0.35,
		Education:  0.1,
		Keywords:   0.15,
	}
}

// GateResult represents one pass/fail check tied to a hard requirement
// or the minimum-years-experience rule.
type GateResult struct {
	Rule    string `json:"rule"`
	Passed  bool   `json:"passed"`
	Details string `json:"details"`
	// Impact is present only when the gate failed.
	Impact string `json:"impact,omitempty"`
}

// SectionScores holds the per-section scores, each rounded to [0,100].
type SectionScores struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Keywords   int `json:"keywords"`
}

// Suggestions holds templated gap-closing text produced for a score result.
type Suggestions struct {
	Bullets    []string `json:"bullets"`
	TopActions []string `json:"top_actions"`
}

// ScoreDebug carries intermediate values for verbose output and troubleshooting.
type ScoreDebug struct {
	RawSections     map[string]float64 `json:"raw_sections"`
	WeightedSum     float64            `json:"weighted_sum"`
	GateCapApplied  bool               `json:"gate_cap_applied"`
	ResumeKeywords  []string           `json:"resume_keywords"`
	JobKeywords     []string           `json:"job_keywords"`
	ResumeSkills    []string           `json:"resume_skills"`
	ExperienceCount int                `json:"experience_count"`
}

// ScoreResult is the complete output of one scoring invocation.
// Every field is produced fresh per call and owned by the caller.
type ScoreResult struct {
	Overall         int           `json:"overall"`
	Sections        SectionScores `json:"sections"`
	Gates           []GateResult  `json:"gates"`
	Matches         []MatchResult `json:"matches"`
	MissingKeywords []string      `json:"missing_keywords"`
	Suggestions     Suggestions   `json:"suggestions"`
	Debug           *ScoreDebug   `json:"debug,omitempty"`
}
