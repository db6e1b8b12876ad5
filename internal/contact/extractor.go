// Package contact detects contact details in resume text and derives the
// search-ability score: a composite measure of how easily a candidate can be
// reached.
package contact

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)

	// Platform list is fixed; the capture group isolates the platform name.
	socialPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(linkedin|twitter|github|stackoverflow|medium|dev\.to)\S*`)
)

// pointsPerPlatform is the social axis contribution per distinct platform.
const pointsPerPlatform = 33.33

// Extractor detects emails, phone numbers, and social-media handles.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor returns a contact signal extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the contact signals found in text together with the
// search-ability score. Only the first email and first phone are retained;
// social handles are deduplicated by platform name.
//
// Each axis (email, phone, social) contributes up to 100 points. The social
// axis scales per distinct platform, capped at 100. When all three axes are
// non-zero the composite is forced to exactly 100; otherwise it is the
// unweighted mean of the three axes.
func (e *Extractor) Extract(text string) (types.ContactSignals, float64) {
	signals := types.ContactSignals{SocialHandles: []string{}}

	if email := emailPattern.FindString(text); email != "" {
		signals.Email = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		signals.Phone = phone
	}

	platforms := make(map[string]bool)
	for _, m := range socialPattern.FindAllStringSubmatch(text, -1) {
		platforms[strings.ToLower(m[1])] = true
	}
	for platform := range platforms {
		signals.SocialHandles = append(signals.SocialHandles, titleCase(platform))
	}
	sort.Strings(signals.SocialHandles)

	emailScore := 0.0
	if signals.Email != "" {
		emailScore = 100
	}
	phoneScore := 0.0
	if signals.Phone != "" {
		phoneScore = 100
	}
	socialScore := float64(len(platforms)) * pointsPerPlatform
	if socialScore > 100 {
		socialScore = 100
	}

	// Full contactability bonus: all three axes present scores a flat 100.
	score := (emailScore + phoneScore + socialScore) / 3
	if emailScore == 100 && phoneScore == 100 && socialScore > 0 {
		score = 100
	}

	return signals, score
}

// titleCase uppercases the first letter only, matching the normalized
// platform rendering ("linkedin" -> "Linkedin", "dev.to" -> "Dev.to").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
