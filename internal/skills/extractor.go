// Package skills provides keyword-based skill extraction over the configured
// skill category table.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/parsing"
)

// Match maps a category name to the deduplicated set of matched keywords.
type Match map[string][]string

// Total returns the total number of matched keywords across all categories.
func (m Match) Total() int {
	n := 0
	for _, kws := range m {
		n += len(kws)
	}
	return n
}

// Set returns the matched keywords of one category as a lookup set.
func (m Match) Set(category string) map[string]bool {
	set := make(map[string]bool, len(m[category]))
	for _, kw := range m[category] {
		set[kw] = true
	}
	return set
}

type compiledKeyword struct {
	keyword string
	pattern *regexp.Regexp
}

type compiledCategory struct {
	name     string
	keywords []compiledKeyword
}

// Extractor matches configured skill keywords against free text.
// It is stateless after construction and safe for concurrent use.
type Extractor struct {
	categories []compiledCategory
}

// NewExtractor precompiles one pattern per configured keyword.
func NewExtractor(cfg *config.Config) *Extractor {
	e := &Extractor{categories: make([]compiledCategory, 0, len(cfg.SkillCategories))}
	for _, cat := range cfg.SkillCategories {
		cc := compiledCategory{name: cat.Name, keywords: make([]compiledKeyword, 0, len(cat.Keywords))}
		for _, kw := range cat.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			cc.keywords = append(cc.keywords, compiledKeyword{
				keyword: strings.ToLower(kw),
				pattern: parsing.CompileWordPattern(kw),
			})
		}
		e.categories = append(e.categories, cc)
	}
	return e
}

// Extract returns the per-category keyword matches found in text. Matching is
// case-insensitive and whole-word; each keyword appears at most once per
// category. Empty text yields an empty mapping. Extract is deterministic and
// has no side effects.
func (e *Extractor) Extract(text string) Match {
	found := make(Match)
	if strings.TrimSpace(text) == "" {
		return found
	}

	for _, cat := range e.categories {
		seen := make(map[string]bool)
		var matched []string
		for _, kw := range cat.keywords {
			if seen[kw.keyword] {
				continue
			}
			if kw.pattern.MatchString(text) {
				seen[kw.keyword] = true
				matched = append(matched, kw.keyword)
			}
		}
		if len(matched) > 0 {
			sort.Strings(matched)
			found[cat.name] = matched
		}
	}

	return found
}
