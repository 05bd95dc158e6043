package types

// SimilarityResult represents the outcome of comparing two texts
type SimilarityResult struct {
	Score          float64  `json:"score"`
	MatchedPhrases []string `json:"matched_phrases"`
	SourceText     string   `json:"source_text"`
	TargetText     string   `json:"target_text"`
}

// MatchResult represents one job-description item matched against resume content
type MatchResult struct {
	JDItem         string   `json:"jd_item"`
	MatchedPhrases []string `json:"matched_phrases"`
	Similarity     float64  `json:"similarity"`
	// SourceSection is "skills" for vocabulary matches or
	// "experience-<index>" for experience-line matches.
	SourceSection string `json:"source_section"`
}
