package types

import (
	"github.com/go-playground/validator/v10"
)

// Text length limits enforced at the API boundary. The scoring core itself
// accepts any input and degrades gracefully.
const (
	MinTextLength = 10
	MaxTextLength = 50000
)

// ScoreRequest represents the request body for POST /score.
type ScoreRequest struct {
	ResumeText   string              `json:"resume_text" validate:"required,min=10,max=50000"`
	JobText      string              `json:"job_text" validate:"required,min=10,max=50000"`
	Weights      *ScoringWeights     `json:"weights,omitempty"`
	Synonyms     map[string][]string `json:"synonyms,omitempty"`
	IncludeDebug bool                `json:"include_debug,omitempty"`
	Persist      bool                `json:"persist,omitempty"`
}

// BulkScoreRequest represents the request body for POST /score/bulk:
// several resumes scored against one job description.
type BulkScoreRequest struct {
	ResumeTexts []string        `json:"resume_texts" validate:"required,min=1,max=50,dive,min=10,max=50000"`
	JobText     string          `json:"job_text" validate:"required,min=10,max=50000"`
	Weights     *ScoringWeights `json:"weights,omitempty"`
}

// BulletsRequest represents the request body for POST /bullets.
type BulletsRequest struct {
	Keywords        []string `json:"keywords" validate:"required,min=1,max=20,dive,min=1"`
	ExperienceLevel string   `json:"experience_level" validate:"required,oneof=entry mid senior"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BulkScoreRequest using the validator.
func (r *BulkScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BulletsRequest using the validator.
func (r *BulletsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
