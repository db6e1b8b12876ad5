package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/config"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	return New(config.Default())
}

func TestScore_EmptyResumeFails(t *testing.T) {
	s := newTestScorer(t)

	_, err := s.Score(context.Background(), "", "anything")
	require.Error(t, err)
	assert.IsType(t, &ErrEmptyResume{}, err)

	_, err = s.Score(context.Background(), "   \n ", "anything")
	require.Error(t, err)
	assert.IsType(t, &ErrEmptyResume{}, err)
}

func TestScore_EmptyJobDescriptionUsesDefault(t *testing.T) {
	s := newTestScorer(t)

	report, err := s.Score(context.Background(), "5 years of experience with Python", "")
	require.NoError(t, err)

	// The default requirement has no extractable skills, so the skill axis
	// is zero and weight shifts toward contact and experience.
	assert.Equal(t, 0.0, report.SkillMatchScore)
	assert.Equal(t, 0.0, report.SearchAbilityScore)
	// No required duration: the resume's own curve score applies (5y -> 85).
	assert.Equal(t, 85.0, report.ExperienceScore)
	// No education requirement: full education axis.
	assert.Equal(t, 100.0, report.EducationScore)
	// 0*0.2 + 0*0.4 + 85*0.3 + 100*0.2
	assert.InDelta(t, 45.5, report.FinalScore, 0.01)
}

func TestScore_EndToEnd(t *testing.T) {
	s := newTestScorer(t)

	resume := "John Doe, 5 years experience in Python and Django. john@x.com, linkedin.com/in/john. Bachelor's in Computer Science."
	job := "Looking for a Python and Django developer, 3+ years experience, Bachelor's in Computer Science."

	report, err := s.Score(context.Background(), resume, job)
	require.NoError(t, err)

	// 2/2 required skills present.
	assert.Equal(t, 100.0, report.SkillMatchScore)
	assert.Equal(t, []string{"python"}, report.MatchedSkills["programming_languages"])
	assert.Equal(t, []string{"django"}, report.MatchedSkills["frameworks"])
	assert.Empty(t, report.MissingSkills)

	// 5 years against a 3-year requirement: capped ratio.
	assert.Equal(t, 100.0, report.ExperienceScore)
	assert.Equal(t, 5*365, report.Experience.Resume.TotalDays)
	assert.Equal(t, 3*365, report.Experience.Required.TotalDays)

	// Level and field both match.
	assert.Equal(t, 100.0, report.EducationScore)
	assert.Equal(t, "bachelors", report.Education.Resume.HighestLevel)
	assert.Equal(t, "bachelors", report.Education.Required.HighestLevel)

	// Email and LinkedIn but no phone: (100 + 0 + 33.33) / 3.
	assert.InDelta(t, 44.44, report.SearchAbilityScore, 0.01)
	assert.Equal(t, "john@x.com", report.SearchAbilityDetails.Email)
	assert.Equal(t, []string{"Linkedin"}, report.SearchAbilityDetails.SocialHandles)

	// 100*0.4 + 44.44*0.2 + 100*0.2 + 100*0.2
	assert.InDelta(t, 88.89, report.FinalScore, 0.01)
}

func TestScore_MissingSkillsSymmetricDiff(t *testing.T) {
	s := newTestScorer(t)

	report, err := s.Score(context.Background(),
		"Python developer, 2 years experience",
		"Needs python, go and docker, 2 years experience")
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, report.MatchedSkills["programming_languages"])
	assert.Equal(t, []string{"go"}, report.MissingSkills["programming_languages"])
	assert.Equal(t, []string{"docker"}, report.MissingSkills["tools"])
	// 1 of 3 required skills matched.
	assert.InDelta(t, 33.33, report.SkillMatchScore, 0.01)
}

func TestScore_NeutralExperienceWhenBothSilent(t *testing.T) {
	s := newTestScorer(t)

	report, err := s.Score(context.Background(),
		"Python developer with strong leadership",
		"Looking for a python developer")
	require.NoError(t, err)

	assert.Equal(t, 50.0, report.ExperienceScore)
	assert.Equal(t, "No experience mentioned", report.Experience.Resume.Formatted)
	assert.Equal(t, "No experience mentioned", report.Experience.Required.Formatted)
}

func TestScore_ExperienceRatioCapped(t *testing.T) {
	s := newTestScorer(t)

	report, err := s.Score(context.Background(),
		"1 year of experience with python",
		"python role, 2 years experience required")
	require.NoError(t, err)

	assert.Equal(t, 50.0, report.ExperienceScore)

	report, err = s.Score(context.Background(),
		"8 years of experience with python",
		"python role, 2 years experience required")
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.ExperienceScore)
}

func TestScore_FullContactBonus(t *testing.T) {
	s := newTestScorer(t)

	report, err := s.Score(context.Background(),
		"python dev, a@b.io, 123-456-7890, github.com/a",
		"python needed")
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.SearchAbilityScore)
}

func TestScore_Deterministic(t *testing.T) {
	s := newTestScorer(t)

	resume := "Go and Python engineer, 4 years experience, jane@corp.example, linkedin.com/in/jane"
	job := "Go developer, 3+ years experience, bachelors in computer science"

	first, err := s.Score(context.Background(), resume, job)
	require.NoError(t, err)
	second, err := s.Score(context.Background(), resume, job)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_CancelledContext(t *testing.T) {
	s := newTestScorer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Score(ctx, "python developer", "python needed")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEducationScore_RenormalizedDimensions(t *testing.T) {
	s := newTestScorer(t)

	// Level required and met, no field requirement: level is the whole axis.
	report, err := s.Score(context.Background(),
		"masters graduate, python, 2 years experience",
		"bachelors required, python, 2 years experience")
	require.NoError(t, err)
	// Resume exceeds the requirement; the ratio caps at 100.
	assert.Equal(t, 100.0, report.EducationScore)

	// Resume below the required level scores the level ratio.
	report, err = s.Score(context.Background(),
		"bachelors graduate, python, 2 years experience",
		"masters required, python, 2 years experience")
	require.NoError(t, err)
	// 0.6/0.8 of the level weight, renormalized over the level dimension only.
	assert.Equal(t, 75.0, report.EducationScore)
}

func TestEducationScore_LevelRequiredButMissing(t *testing.T) {
	s := newTestScorer(t)

	report, err := s.Score(context.Background(),
		"python, 2 years experience",
		"bachelors in computer science required, python, 2 years experience")
	require.NoError(t, err)

	// Level and field both required, neither present in the resume.
	assert.Equal(t, 0.0, report.EducationScore)
}

func TestScore_WeightRedistributionWithoutRequiredSkills(t *testing.T) {
	s := newTestScorer(t)

	// Job description with no recognizable skills: skill axis scores zero and
	// its weight shifts toward contact and experience.
	report, err := s.Score(context.Background(),
		"a@b.io 123-456-7890 github.com/a, 3 years experience",
		"hiring a friendly generalist, 3 years experience wanted")
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.SkillMatchScore)
	assert.Equal(t, 100.0, report.SearchAbilityScore)
	assert.Equal(t, 100.0, report.ExperienceScore)
	assert.Equal(t, 100.0, report.EducationScore)
	// 0*0.2 + 100*0.4 + 100*0.3 + 100*0.2
	assert.InDelta(t, 90.0, report.FinalScore, 0.01)
}
