// Package parsing provides shared text-matching helpers for the extractors.
package parsing

import (
	"regexp"
	"strings"
)

// CompileWordPattern builds a case-insensitive whole-word pattern for a
// keyword, so that "go" never matches inside "going". Word-character edges
// use \b; punctuation edges ("c++", ".net") cannot carry \b, so those sides
// anchor on whitespace or start/end of text instead.
func CompileWordPattern(keyword string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(strings.ToLower(keyword))

	prefix := `\b`
	if !isWordByte(keyword[0]) {
		prefix = `(?:^|\s)`
	}
	suffix := `\b`
	if !isWordByte(keyword[len(keyword)-1]) {
		suffix = `(?:\s|$)`
	}

	return regexp.MustCompile(`(?i)` + prefix + escaped + suffix)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
