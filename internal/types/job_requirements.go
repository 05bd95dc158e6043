package types

// JobRequirements represents the structured requirements extracted from a job description
type JobRequirements struct {
	// HardRequirements preserves pattern order then appearance order and may
	// contain duplicates when several trigger phrases capture the same clause.
	HardRequirements []string `json:"hard_requirements"`
	NiceToHave       []string `json:"nice_to_have"`
	// SkillsRequired is a deduplicated, unordered set of vocabulary skills.
	SkillsRequired []string `json:"skills_required"`
	// ExperienceYears is nil when no years-of-experience pattern matched.
	ExperienceYears *int `json:"experience_years,omitempty"`
}
