// Package education detects the highest education level and the fields of
// study mentioned in a text.
package education

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/types"
)

type compiledLevel struct {
	name     string
	weight   float64
	patterns []*regexp.Regexp
}

type compiledField struct {
	name    string
	pattern *regexp.Regexp
}

// Extractor matches configured education levels and field-of-study phrases.
// Safe for concurrent use.
type Extractor struct {
	levels []compiledLevel
	fields []compiledField
}

// NewExtractor precompiles level alias and field patterns.
func NewExtractor(cfg *config.Config) *Extractor {
	e := &Extractor{}
	for _, level := range cfg.EducationLevels {
		cl := compiledLevel{name: level.Name, weight: level.Weight}
		for _, alias := range level.Aliases {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			cl.patterns = append(cl.patterns, parsing.CompileWordPattern(alias))
		}
		e.levels = append(e.levels, cl)
	}
	for _, field := range cfg.EducationFields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		e.fields = append(e.fields, compiledField{name: field, pattern: parsing.CompileWordPattern(field)})
	}
	return e
}

// Extract returns the education profile found in text. When several levels
// are mentioned, the one with the greatest configured weight wins. All
// matching field phrases are retained.
func (e *Extractor) Extract(text string) types.EducationProfile {
	profile := types.EducationProfile{Fields: []string{}}

	bestWeight := 0.0
	for _, level := range e.levels {
		for _, pattern := range level.patterns {
			if pattern.MatchString(text) {
				if level.weight > bestWeight {
					bestWeight = level.weight
					profile.HighestLevel = level.name
				}
				break
			}
		}
	}

	for _, field := range e.fields {
		if field.pattern.MatchString(text) {
			profile.Fields = append(profile.Fields, field.name)
		}
	}
	sort.Strings(profile.Fields)

	return profile
}
