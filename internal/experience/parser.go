// Package experience extracts a work-experience duration from free text and
// converts it into a normalized 0-100 sub-score.
package experience

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	daysPerYear  = 365
	daysPerMonth = 30

	// noExperience is the formatted rendering when no duration was found.
	noExperience = "No experience mentioned"
)

// experienceKeywords gate the whole parse: a text containing none of them is
// treated as not discussing experience at all, which scores neutrally rather
// than as zero experience.
var experienceKeywords = []string{"years", "months", "days", "experience"}

// combinedPattern matches "N years and M months" phrasings. It outranks every
// single-unit pattern; once it matches, lower tiers are not attempted.
var combinedPattern = regexp.MustCompile(`(\d+)\s*years?\s*(?:and)?\s*(\d+)\s*months?`)

// unitTier is one precedence tier of surface phrasings for a single unit.
// Tiers are evaluated in order with first-non-zero-wins semantics; within a
// tier the maximum value across all pattern matches is taken.
type unitTier struct {
	patterns []*regexp.Regexp
	factor   int // days per unit
}

var tiers = []unitTier{
	{
		factor: daysPerYear,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of)?\s*experience`),
			regexp.MustCompile(`experience\s*(?:of)?\s*(\d+)\+?\s*years?`),
			regexp.MustCompile(`(?:worked|working)\s*(?:for)?\s*(\d+)\+?\s*years?`),
		},
	},
	{
		factor: daysPerMonth,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)\s*months?\s*(?:of)?\s*experience`),
			regexp.MustCompile(`experience\s*(?:of)?\s*(\d+)\s*months?`),
			regexp.MustCompile(`(?:worked|working)\s*(?:for)?\s*(\d+)\s*months?`),
		},
	},
	{
		factor: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)\s*days?\s*(?:of)?\s*experience`),
			regexp.MustCompile(`experience\s*(?:of)?\s*(\d+)\s*days?`),
		},
	},
}

// Parser extracts experience durations. Safe for concurrent use.
type Parser struct {
	neutralScore float64
}

// NewParser returns a parser using the configured neutral score.
func NewParser(cfg *config.Config) *Parser {
	return &Parser{neutralScore: cfg.NeutralExperienceScore}
}

// Extract derives an ExperienceRecord from text. A text that never mentions
// experience at all yields the neutral record; a text that mentions it but
// carries no parseable duration yields zero days.
func (p *Parser) Extract(text string) types.ExperienceRecord {
	lower := strings.ToLower(text)

	if !p.Mentions(lower) {
		return types.ExperienceRecord{
			TotalDays: 0,
			Formatted: noExperience,
			Score:     p.neutralScore,
		}
	}

	days := totalDays(lower)
	return types.ExperienceRecord{
		TotalDays: days,
		Formatted: FormatDuration(days),
		Score:     CalculateScore(days),
	}
}

// Mentions reports whether text contains any experience-indicating keyword.
func (p *Parser) Mentions(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range experienceKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// totalDays runs the pattern tiers in strict precedence order.
func totalDays(lower string) int {
	// Combined "N years and M months" first; all occurrences accumulate.
	days := 0
	for _, m := range combinedPattern.FindAllStringSubmatch(lower, -1) {
		years, _ := strconv.Atoi(m[1])
		months, _ := strconv.Atoi(m[2])
		days += years*daysPerYear + months*daysPerMonth
	}
	if days > 0 {
		return days
	}

	for _, tier := range tiers {
		maxUnits := 0
		for _, pattern := range tier.patterns {
			for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
				if n, err := strconv.Atoi(m[1]); err == nil && n > maxUnits {
					maxUnits = n
				}
			}
		}
		if maxUnits > 0 {
			return maxUnits * tier.factor
		}
	}

	return 0
}

// CalculateScore converts a day count into a 0-100 sub-score, rounded to one
// decimal. The curve is piecewise-linear in years:
//
//	0-3 months maps onto 0-25, 3-12 months onto 25-50,
//	1-3 years onto 50-75, 3+ years onto 75-100 (capped).
func CalculateScore(days int) float64 {
	years := float64(days) / daysPerYear

	var score float64
	switch {
	case years >= 3:
		score = math.Min(100, 75+(years-3)*5)
	case years >= 1:
		score = 50 + (years-1)*12.5
	case years >= 0.25:
		score = 25 + (years-0.25)*33.33
	default:
		score = (years / 0.25) * 25
	}

	return math.Round(score*10) / 10
}

// FormatDuration renders a day count as a natural-language phrase, omitting
// zero components. Day counts only show when no full year is present.
func FormatDuration(days int) string {
	if days == 0 {
		return noExperience
	}

	years := days / daysPerYear
	remaining := days % daysPerYear
	months := remaining / daysPerMonth
	remDays := remaining % daysPerMonth

	var parts []string
	if years > 0 {
		parts = append(parts, pluralize(years, "year"))
	}
	if months > 0 {
		parts = append(parts, pluralize(months, "month"))
	}
	if remDays > 0 && years == 0 {
		parts = append(parts, pluralize(remDays, "day"))
	}

	if len(parts) == 0 {
		return noExperience
	}
	return strings.Join(parts, " and ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
