// Package config provides the static scoring configuration: skill category
// tables, education levels and fields, and aggregation weights. The
// configuration is loaded once at startup and treated as read-only by every
// extractor; no call mutates it.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// SkillCategory is a named group of related keyword terms with a relative
// scoring weight. Weights across categories sum to 1.0.
type SkillCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Weight   float64  `json:"weight"`
}

// EducationLevel is a recognized degree level with its comparison weight and
// the surface forms that count as a mention ("bachelors", "bachelor's", "bsc").
type EducationLevel struct {
	Name    string   `json:"name"`
	Weight  float64  `json:"weight"`
	Aliases []string `json:"aliases"`
}

// Weights holds the final-score weighting per axis.
type Weights struct {
	Skill      float64 `json:"skill"`
	Contact    float64 `json:"contact"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// Config is the full scoring configuration.
type Config struct {
	SkillCategories []SkillCategory  `json:"skill_categories"`
	EducationLevels []EducationLevel `json:"education_levels"`
	EducationFields []string         `json:"education_fields"`
	Weights         Weights          `json:"weights"`

	// NeutralExperienceScore is assigned when experience is legitimately
	// absent from both compared texts.
	NeutralExperienceScore float64 `json:"neutral_experience_score"`

	// DefaultJobDescription replaces an empty job description.
	DefaultJobDescription string `json:"default_job_description"`
}

// Load loads a scoring configuration from a JSON file.
// Returns an error if the file cannot be read, parsed, or fails validation.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if len(c.SkillCategories) == 0 {
		return fmt.Errorf("config error: at least one skill category is required")
	}

	categoryWeight := 0.0
	for _, cat := range c.SkillCategories {
		if cat.Name == "" {
			return fmt.Errorf("config error: skill category with empty name")
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("config error: skill category %q has no keywords", cat.Name)
		}
		for _, kw := range cat.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("config error: skill category %q has an empty keyword", cat.Name)
			}
		}
		if cat.Weight < 0 {
			return fmt.Errorf("config error: skill category %q has negative weight", cat.Name)
		}
		categoryWeight += cat.Weight
	}
	if math.Abs(categoryWeight-1.0) > 0.001 {
		return fmt.Errorf("config error: skill category weights sum to %.3f, want 1.0", categoryWeight)
	}

	for _, level := range c.EducationLevels {
		if level.Name == "" || len(level.Aliases) == 0 {
			return fmt.Errorf("config error: education level with empty name or aliases")
		}
		if level.Weight <= 0 || level.Weight > 1 {
			return fmt.Errorf("config error: education level %q weight out of (0,1]", level.Name)
		}
		for _, alias := range level.Aliases {
			if strings.TrimSpace(alias) == "" {
				return fmt.Errorf("config error: education level %q has an empty alias", level.Name)
			}
		}
	}

	for _, field := range c.EducationFields {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("config error: empty education field")
		}
	}

	axisWeight := c.Weights.Skill + c.Weights.Contact + c.Weights.Experience + c.Weights.Education
	if math.Abs(axisWeight-1.0) > 0.001 {
		return fmt.Errorf("config error: axis weights sum to %.3f, want 1.0", axisWeight)
	}

	if c.NeutralExperienceScore < 0 || c.NeutralExperienceScore > 100 {
		return fmt.Errorf("config error: neutral_experience_score out of [0,100]")
	}
	if c.DefaultJobDescription == "" {
		return fmt.Errorf("config error: default_job_description is empty")
	}

	return nil
}

// LevelWeight returns the weight for an education level name, or 0 when unknown.
func (c *Config) LevelWeight(name string) float64 {
	for _, level := range c.EducationLevels {
		if level.Name == name {
			return level.Weight
		}
	}
	return 0
}
