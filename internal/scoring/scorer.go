package scoring

import (
	"context"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/contact"
	"github.com/jonathan/resume-scorer/internal/education"
	"github.com/jonathan/resume-scorer/internal/experience"
	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Weight redistribution applied when the job description yields no skills:
// skill matching is meaningless with no reference skills, so its weight moves
// toward the contact and experience axes.
const (
	skilllessSkillDelta      = -0.2
	skilllessContactDelta    = 0.2
	skilllessExperienceDelta = 0.1
)

// Education sub-score split between degree level and field overlap.
const (
	levelWeight = 0.6
	fieldWeight = 0.4
)

// Scorer is the scoring engine. It is a pure, stateless function of its two
// text inputs: identical inputs always produce an identical report, and many
// calls may run concurrently with no synchronization.
type Scorer struct {
	cfg        *config.Config
	skills     *skills.Extractor
	contact    *contact.Extractor
	experience *experience.Parser
	education  *education.Extractor
}

// New builds a scorer from the given configuration. The configuration is
// captured by reference and must not be mutated afterwards.
func New(cfg *config.Config) *Scorer {
	return &Scorer{
		cfg:        cfg,
		skills:     skills.NewExtractor(cfg),
		contact:    contact.NewExtractor(),
		experience: experience.NewParser(cfg),
		education:  education.NewExtractor(cfg),
	}
}

// textSignals holds the extraction results for one input text.
type textSignals struct {
	skills     skills.Match
	education  types.EducationProfile
	experience types.ExperienceRecord
}

// Score scores a resume against a job description and returns the report.
// An empty resume is an error; an empty job description is replaced with the
// configured open-ended default.
func (s *Scorer) Score(ctx context.Context, resumeText, jobDescription string) (*types.ScoreReport, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &ErrEmptyResume{}
	}
	if strings.TrimSpace(jobDescription) == "" {
		jobDescription = s.cfg.DefaultJobDescription
	}

	// The resume and job-description branches are independent; run them in
	// parallel. Extraction never fails, so the group only propagates
	// context cancellation.
	var resume, job textSignals
	var signals types.ContactSignals
	var contactScore float64

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		resume = s.extract(resumeText)
		signals, contactScore = s.contact.Extract(resumeText)
		return nil
	})
	g.Go(func() error {
		job = s.extract(jobDescription)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	skillScore, requiredSkills := s.skillMatchScore(resume.skills, job.skills)
	experienceScore := s.experienceScore(resume.experience, job.experience)
	educationScore := s.educationScore(resume.education, job.education)

	weights := s.cfg.Weights
	if requiredSkills == 0 {
		weights = redistribute(weights)
	}

	final := skillScore*weights.Skill +
		contactScore*weights.Contact +
		experienceScore*weights.Experience +
		educationScore*weights.Education

	matched, missing := diffSkills(resume.skills, job.skills)

	return &types.ScoreReport{
		FinalScore:           round2(final),
		SkillMatchScore:      round2(skillScore),
		SearchAbilityScore:   round2(contactScore),
		ExperienceScore:      round2(experienceScore),
		EducationScore:       round2(educationScore),
		MatchedSkills:        matched,
		MissingSkills:        missing,
		SearchAbilityDetails: signals,
		Experience: types.ExperienceDetail{
			Resume:   resume.experience,
			Required: job.experience,
		},
		Education: types.EducationDetail{
			Resume:   resume.education,
			Required: job.education,
		},
	}, nil
}

// extract runs the per-text extractors.
func (s *Scorer) extract(text string) textSignals {
	return textSignals{
		skills:     s.skills.Extract(text),
		education:  s.education.Extract(text),
		experience: s.experience.Extract(text),
	}
}

// skillMatchScore returns the skill score and the number of skills the job
// description requires. With zero required skills there is nothing to verify
// against and the score is 0; the caller compensates through weight
// redistribution.
func (s *Scorer) skillMatchScore(resume, job skills.Match) (float64, int) {
	required := job.Total()
	if required == 0 {
		return 0, 0
	}

	matched := 0
	for category, jobKeywords := range job {
		resumeSet := resume.Set(category)
		for _, kw := range jobKeywords {
			if resumeSet[kw] {
				matched++
			}
		}
	}

	return float64(matched) / float64(required) * 100, required
}

// experienceScore derives the experience axis. Both sides silent scores
// neutrally; a concrete requirement scores as a capped ratio; a requirement
// without a duration falls back to the resume's own duration curve.
func (s *Scorer) experienceScore(resume, required types.ExperienceRecord) float64 {
	switch {
	case resume.TotalDays == 0 && required.TotalDays == 0:
		return s.cfg.NeutralExperienceScore
	case required.TotalDays > 0:
		return math.Min(100, float64(resume.TotalDays)/float64(required.TotalDays)*100)
	default:
		return resume.Score
	}
}

// educationScore weights degree-level match and field overlap 60/40, counting
// only the dimensions the job description actually specifies. A job
// description with no education requirement at all scores the axis full.
func (s *Scorer) educationScore(resume, required types.EducationProfile) float64 {
	score := 0.0
	weights := 0.0

	if required.HighestLevel != "" {
		weights += levelWeight
		if resume.HighestLevel != "" {
			requiredWeight := s.cfg.LevelWeight(required.HighestLevel)
			resumeWeight := s.cfg.LevelWeight(resume.HighestLevel)
			if requiredWeight > 0 {
				score += levelWeight * math.Min(100, resumeWeight/requiredWeight*100)
			}
		}
	}

	if len(required.Fields) > 0 {
		weights += fieldWeight
		matched := 0
		resumeFields := make(map[string]bool, len(resume.Fields))
		for _, f := range resume.Fields {
			resumeFields[f] = true
		}
		for _, f := range required.Fields {
			if resumeFields[f] {
				matched++
			}
		}
		score += fieldWeight * float64(matched) / float64(len(required.Fields)) * 100
	}

	if weights == 0 {
		return 100
	}
	return score / weights
}

// diffSkills computes matched and missing skills per category: matched is the
// intersection, missing is the job-description set minus the resume set.
// Categories with no entries are pruned.
func diffSkills(resume, job skills.Match) (matched, missing map[string][]string) {
	matched = make(map[string][]string)
	missing = make(map[string][]string)

	for category, jobKeywords := range job {
		resumeSet := resume.Set(category)
		var hit, miss []string
		for _, kw := range jobKeywords {
			if resumeSet[kw] {
				hit = append(hit, kw)
			} else {
				miss = append(miss, kw)
			}
		}
		if len(hit) > 0 {
			sort.Strings(hit)
			matched[category] = hit
		}
		if len(miss) > 0 {
			sort.Strings(miss)
			missing[category] = miss
		}
	}

	return matched, missing
}

// redistribute shifts weight away from the skill axis for skill-less job
// descriptions.
func redistribute(w config.Weights) config.Weights {
	w.Skill += skilllessSkillDelta
	if w.Skill < 0 {
		w.Skill = 0
	}
	w.Contact += skilllessContactDelta
	w.Experience += skilllessExperienceDelta
	return w
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
