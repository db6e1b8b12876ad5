// Package types provides type definitions for structured data used throughout the resume-scorer system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest represents a request to score a resume against a job description.
// JobDescription and JobURL are both optional; when both are empty the engine
// substitutes a default open-ended requirement.
type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ContactSignals holds the contact details found in a resume.
// Only the first email and phone found are retained; social handles are
// deduplicated by platform.
type ContactSignals struct {
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	SocialHandles []string `json:"social_media_handles"`
}

// ExperienceRecord holds the experience duration extracted from one text.
// Records are derived once per input and never mutated afterwards.
type ExperienceRecord struct {
	TotalDays int     `json:"total_days"`
	Formatted string  `json:"formatted_experience"`
	Score     float64 `json:"experience_score"`
}

// EducationProfile holds the education signals extracted from one text.
type EducationProfile struct {
	HighestLevel string   `json:"highest_level,omitempty"`
	Fields       []string `json:"fields"`
}

// ExperienceDetail pairs the resume and required experience records.
type ExperienceDetail struct {
	Resume   ExperienceRecord `json:"resume"`
	Required ExperienceRecord `json:"required"`
}

// EducationDetail pairs the resume and required education profiles.
type EducationDetail struct {
	Resume   EducationProfile `json:"resume_education"`
	Required EducationProfile `json:"required_education"`
}

// ScoreReport is the aggregate scoring output. It is immutable once built;
// one report is produced per scoring call and no state is shared across calls.
type ScoreReport struct {
	FinalScore           float64             `json:"final_score"`
	SkillMatchScore      float64             `json:"skill_match_score"`
	SearchAbilityScore   float64             `json:"search_ability_score"`
	ExperienceScore      float64             `json:"experience_score"`
	EducationScore       float64             `json:"education_score"`
	MatchedSkills        map[string][]string `json:"matched_skills"`
	MissingSkills        map[string][]string `json:"missing_skills"`
	SearchAbilityDetails ContactSignals      `json:"search_ability_details"`
	Experience           ExperienceDetail    `json:"experience"`
	Education            EducationDetail     `json:"education"`
}
