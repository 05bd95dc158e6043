package types

// ResumeSections represents a resume partitioned into named sections.
// Every field is optional; a resume with no recognized headers produces
// the zero value. Built fresh per scoring call and never merged across calls.
type ResumeSections struct {
	Summary        string   `json:"summary,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Experience     []string `json:"experience,omitempty"`
	Education      []string `json:"education,omitempty"`
	Projects       []string `json:"projects,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
}

// IsEmpty reports whether no section was recognized at all.
func (s *ResumeSections) IsEmpty() bool {
	return s.Summary == "" &&
		len(s.Skills) == 0 &&
		len(s.Experience) == 0 &&
		len(s.Education) == 0 &&
		len(s.Projects) == 0 &&
		len(s.Certifications) == 0
}
