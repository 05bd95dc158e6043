// Package parsing provides structural extraction: resume section
// segmentation and job-description requirement extraction.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// sectionHeader is one "starts-with any synonym" header rule. Rules are
// evaluated in the order they appear in sectionHeaders; the first match
// wins for a given line.
type sectionHeader struct {
	name     string
	prefixes []string
}

// sectionHeaders is ordered. Reordering it changes which section claims
// ambiguous header lines, so the order is part of the contract.
var sectionHeaders = []sectionHeader{
	{name: "summary", prefixes: []string{"summary", "professional summary", "objective", "profile", "about me"}},
	{name: "skills", prefixes: []string{"skills", "technical skills", "core competencies", "technologies", "tech stack"}},
	{name: "experience", prefixes: []string{"experience", "work experience", "professional experience", "employment", "work history"}},
	{name: "education", prefixes: []string{"education", "academic background", "qualifications"}},
	{name: "projects", prefixes: []string{"projects", "personal projects", "selected projects", "portfolio"}},
	{name: "certifications", prefixes: []string{"certifications", "certificates", "licenses"}},
}

// matchHeader returns the section name claimed by a header line, or ""
// when the line is not a header.
func matchHeader(line string) string {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, h := range sectionHeaders {
		for _, p := range h.prefixes {
			if strings.HasPrefix(lower, p) {
				return h.name
			}
		}
	}
	return ""
}

// SegmentSections partitions resume text into named sections. It walks
// trimmed non-empty lines with a single active section: a header match
// flushes the buffered lines into the result and switches sections;
// other lines append to the active buffer. Lines before the first
// recognized header are discarded. The summary is joined into one
// string; all other sections keep their lines.
func SegmentSections(resumeText string) *types.ResumeSections {
	sections := &types.ResumeSections{}

	active := ""
	var buffer []string

	flush := func() {
		if active == "" || len(buffer) == 0 {
			buffer = nil
			return
		}
		switch active {
		case "summary":
			sections.Summary = strings.Join(buffer, " ")
		case "skills":
			sections.Skills = buffer
		case "experience":
			sections.Experience = buffer
		case "education":
			sections.Education = buffer
		case "projects":
			sections.Projects = buffer
		case "certifications":
			sections.Certifications = buffer
		}
		buffer = nil
	}

	for _, raw := range strings.Split(resumeText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if name := matchHeader(line); name != "" {
			flush()
			active = name
			continue
		}
		if active != "" {
			buffer = append(buffer, line)
		}
	}
	flush()

	return sections
}
