// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
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

// PrintScoreReport outputs a human-readable summary of a scoring report.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final Score:      %.2f\n", report.FinalScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skill Match:      %.2f\n", report.SkillMatchScore))
	sb.WriteString(fmt.Sprintf("Search Ability:   %.2f\n", report.SearchAbilityScore))
	sb.WriteString(fmt.Sprintf("Experience:       %.2f\n", report.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education:        %.2f\n", report.EducationScore))

	if section := formatSkills("Matched Skills", report.MatchedSkills); section != "" {
		sb.WriteString("\n")
		sb.WriteString(section)
	}
	if section := formatSkills("Missing Skills", report.MissingSkills); section != "" {
		sb.WriteString("\n")
		sb.WriteString(section)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Resume Experience:   %s\n", report.Experience.Resume.Formatted))
	sb.WriteString(fmt.Sprintf("Required Experience: %s\n", report.Experience.Required.Formatted))

	if report.Education.Resume.HighestLevel != "" {
		sb.WriteString(fmt.Sprintf("Resume Education:    %s\n", report.Education.Resume.HighestLevel))
	}
	if report.Education.Required.HighestLevel != "" {
		sb.WriteString(fmt.Sprintf("Required Education:  %s\n", report.Education.Required.HighestLevel))
	}

	p.printBox("Score Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintContactSignals outputs the detected contact details.
func (p *Printer) PrintContactSignals(signals types.ContactSignals) {
	var sb strings.Builder

	if signals.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", signals.Email))
	}
	if signals.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", signals.Phone))
	}
	if len(signals.SocialHandles) > 0 {
		sb.WriteString(fmt.Sprintf("Social: %s\n", strings.Join(signals.SocialHandles, ", ")))
	}

	if sb.Len() == 0 {
		sb.WriteString("No contact details found\n")
	}

	p.printBox("Contact Details", strings.TrimRight(sb.String(), "\n"))
}

// formatSkills renders a per-category skill map, capping long lists.
func formatSkills(title string, skillMap map[string][]string) string {
	if len(skillMap) == 0 {
		return ""
	}

	categories := make([]string, 0, len(skillMap))
	for category := range skillMap {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString(title + ":\n")
	for _, category := range categories {
		kws := skillMap[category]
		count := min(len(kws), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s: %s", category, strings.Join(kws[:count], ", ")))
		if len(kws) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(kws)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
