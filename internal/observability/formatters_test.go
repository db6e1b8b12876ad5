package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ScoreReport{
		FinalScore:         88.89,
		SkillMatchScore:    100,
		SearchAbilityScore: 44.44,
		ExperienceScore:    100,
		EducationScore:     100,
		MatchedSkills: map[string][]string{
			"programming_languages": {"python"},
			"frameworks":            {"django"},
		},
		MissingSkills: map[string][]string{
			"tools": {"docker", "kubernetes"},
		},
		Experience: types.ExperienceDetail{
			Resume:   types.ExperienceRecord{TotalDays: 1825, Formatted: "5 years"},
			Required: types.ExperienceRecord{TotalDays: 1095, Formatted: "3 years"},
		},
		Education: types.EducationDetail{
			Resume:   types.EducationProfile{HighestLevel: "bachelors"},
			Required: types.EducationProfile{HighestLevel: "bachelors"},
		},
	}

	p.PrintScoreReport(report)
	out := buf.String()

	assert.Contains(t, out, "Score Report")
	assert.Contains(t, out, "Final Score:      88.89")
	assert.Contains(t, out, "Matched Skills:")
	assert.Contains(t, out, "programming_languages: python")
	assert.Contains(t, out, "Missing Skills:")
	assert.Contains(t, out, "tools: docker, kubernetes")
	assert.Contains(t, out, "Resume Experience:   5 years")
	assert.Contains(t, out, "Required Education:  bachelors")
}

func TestPrintScoreReport_Nil(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintScoreReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScoreReport_CapsLongSkillLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ScoreReport{
		MatchedSkills: map[string][]string{
			"tools": {"a", "b", "c", "d", "e", "f", "g"},
		},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintContactSignals(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContactSignals(types.ContactSignals{
		Email:         "a@b.io",
		Phone:         "555-123-4567",
		SocialHandles: []string{"Github", "Linkedin"},
	})
	out := buf.String()

	assert.Contains(t, out, "Email:  a@b.io")
	assert.Contains(t, out, "Phone:  555-123-4567")
	assert.Contains(t, out, "Social: Github, Linkedin")
}

func TestPrintContactSignals_Empty(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintContactSignals(types.ContactSignals{})

	assert.Contains(t, buf.String(), "No contact details found")
}
