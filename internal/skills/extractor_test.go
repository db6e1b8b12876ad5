package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/config"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(config.Default())
}

func TestExtract_BasicMatch(t *testing.T) {
	e := newTestExtractor(t)

	match := e.Extract("Senior developer with Python and Django, deployed on AWS with Docker.")

	assert.ElementsMatch(t, []string{"python"}, match["programming_languages"])
	assert.ElementsMatch(t, []string{"django"}, match["frameworks"])
	assert.ElementsMatch(t, []string{"aws", "docker"}, match["tools"])
}

func TestExtract_WholeWordOnly(t *testing.T) {
	e := newTestExtractor(t)

	// "javascript" must not register a match for "java"
	match := e.Extract("Expert in javascript")
	assert.ElementsMatch(t, []string{"javascript"}, match["programming_languages"])

	// "java" must not match inside a larger token
	match = e.Extract("I am a scriptjavaer")
	assert.Empty(t, match["programming_languages"])

	// "go" must not match inside "going"
	match = e.Extract("going forward we will decide")
	assert.Empty(t, match["programming_languages"])
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := newTestExtractor(t)

	match := e.Extract("PYTHON and Django and KuBeRnEtEs")

	assert.Contains(t, match["programming_languages"], "python")
	assert.Contains(t, match["frameworks"], "django")
	assert.Contains(t, match["tools"], "kubernetes")
}

func TestExtract_PunctuationKeywords(t *testing.T) {
	e := newTestExtractor(t)

	match := e.Extract("Proficient in c++ and c# development")
	assert.Contains(t, match["programming_languages"], "c++")
	assert.Contains(t, match["programming_languages"], "c#")

	// Multi-word keyword with punctuation edge anchoring
	match = e.Extract("holds an aws certified credential")
	assert.Contains(t, match["certifications"], "aws certified")
}

func TestExtract_EmptyText(t *testing.T) {
	e := newTestExtractor(t)

	match := e.Extract("")
	assert.Empty(t, match)

	match = e.Extract("   \n\t ")
	assert.Empty(t, match)
}

func TestExtract_Deduplicates(t *testing.T) {
	e := newTestExtractor(t)

	match := e.Extract("python python PYTHON")
	assert.Equal(t, []string{"python"}, match["programming_languages"])
}

func TestExtract_Idempotent(t *testing.T) {
	e := newTestExtractor(t)
	text := "Python and Django developer with AWS, Docker, and PostgreSQL"

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}

func TestMatch_Total(t *testing.T) {
	m := Match{
		"programming_languages": {"python", "go"},
		"tools":                 {"docker"},
	}
	assert.Equal(t, 3, m.Total())
	assert.Equal(t, 0, Match{}.Total())
}

func TestMatch_Set(t *testing.T) {
	m := Match{"tools": {"docker", "git"}}

	set := m.Set("tools")
	require.True(t, set["docker"])
	require.True(t, set["git"])
	assert.False(t, set["aws"])
	assert.Empty(t, m.Set("frameworks"))
}

func TestNewExtractor_SkipsBlankKeywords(t *testing.T) {
	cfg := config.Default()
	cfg.SkillCategories[0].Keywords = append(cfg.SkillCategories[0].Keywords, "", "  ")

	e := NewExtractor(cfg)

	match := e.Extract("Python developer")
	assert.ElementsMatch(t, []string{"python"}, match["programming_languages"])
}
