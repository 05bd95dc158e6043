// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to maxItemsToShow entries with a truncation note.
func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintSections outputs a summary of the segmented resume.
func (p *Printer) PrintSections(sections *types.ResumeSections) {
	if sections == nil || sections.IsEmpty() {
		return
	}

	var sb strings.Builder
	if sections.Summary != "" {
		summary := sections.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Summary:  %s\n\n", summary))
	}
	sb.WriteString(fmt.Sprintf("Skills:         %d\n", len(sections.Skills)))
	sb.WriteString(fmt.Sprintf("Experience:     %d\n", len(sections.Experience)))
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(sections.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(sections.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d", len(sections.Certifications)))

	p.printBox("RESUME SECTIONS", sb.String())
}

// PrintRequirements outputs the extracted job requirements.
func (p *Printer) PrintRequirements(reqs *types.JobRequirements) {
	if reqs == nil {
		return
	}

	var sb strings.Builder

	if reqs.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience: %d years\n\n", *reqs.ExperienceYears))
	}

	if len(reqs.HardRequirements) > 0 {
		sb.WriteString("Hard Requirements:\n")
		writeList(&sb, reqs.HardRequirements)
		sb.WriteString("\n")
	}

	if len(reqs.NiceToHave) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		writeList(&sb, reqs.NiceToHave)
		sb.WriteString("\n")
	}

	if len(reqs.SkillsRequired) > 0 {
		sb.WriteString("Skills:\n")
		writeList(&sb, reqs.SkillsRequired)
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEntities outputs the entities recognized in the resume:
// vocabulary skills plus any best-effort extracted organizations,
// locations, and dates.
func (p *Printer) PrintEntities(entities *types.Entities) {
	if entities == nil {
		return
	}
	if len(entities.Skills) == 0 && len(entities.Organizations) == 0 &&
		len(entities.Locations) == 0 && len(entities.Dates) == 0 {
		return
	}

	var sb strings.Builder

	if len(entities.Skills) > 0 {
		sb.WriteString("Skills:\n")
		writeList(&sb, entities.Skills)
		sb.WriteString("\n")
	}

	if len(entities.Organizations) > 0 {
		sb.WriteString("Organizations:\n")
		writeList(&sb, entities.Organizations)
		sb.WriteString("\n")
	}

	if len(entities.Locations) > 0 {
		sb.WriteString("Locations:\n")
		writeList(&sb, entities.Locations)
		sb.WriteString("\n")
	}

	if len(entities.Dates) > 0 {
		sb.WriteString("Dates:\n")
		writeList(&sb, entities.Dates)
	}

	p.printBox("RESUME ENTITIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreResult outputs the final score with section breakdown,
// gates, and suggestions.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %d\n\n", result.Overall))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", result.Sections.Skills))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", result.Sections.Experience))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", result.Sections.Education))
	sb.WriteString(fmt.Sprintf("Keywords:   %d\n", result.Sections.Keywords))

	if len(result.Gates) > 0 {
		sb.WriteString("\nGates:\n")
		count := min(len(result.Gates), maxItemsToShow)
		for i := 0; i < count; i++ {
			gate := result.Gates[i]
			mark := "✓"
			if !gate.Passed {
				mark = "✗"
			}
			rule := gate.Rule
			if len(rule) > 45 {
				rule = rule[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", mark, rule))
		}
		if len(result.Gates) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Gates)-maxItemsToShow))
		}
	}

	if len(result.MissingKeywords) > 0 {
		missing := strings.Join(result.MissingKeywords, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMissing:  %s\n", missing))
	}

	if len(result.Suggestions.TopActions) > 0 {
		sb.WriteString("\nTop Actions:\n")
		writeList(&sb, result.Suggestions.TopActions)
	}

	p.printBox("COMPATIBILITY SCORE", strings.TrimSuffix(sb.String(), "\n"))
}
