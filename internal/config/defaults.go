package config

// Default returns the built-in scoring configuration. Callers must treat the
// result as read-only; it is shared across concurrent scoring calls.
func Default() *Config {
	return &Config{
		SkillCategories: []SkillCategory{
			{
				Name:   "programming_languages",
				Weight: 0.20,
				Keywords: []string{
					"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin",
					"typescript", "matlab", "scala", "perl", "go", "rust", "objective-c", "vb.net",
					"lua", "haskell", "dart", "bash", "shell", "groovy", "julia", "fortran", ".net",
				},
			},
			{
				Name:   "frameworks",
				Weight: 0.15,
				Keywords: []string{
					"react", "angular", "vue", "django", "flask", "spring", "express", "laravel", "rails",
					"asp.net", "svelte", "ember", "backbone", "meteor", "nestjs", "next.js", "nuxt.js",
					"ionic", "bootstrap", "foundation", "tailwind", "bulma", "tensorflow", "pytorch",
				},
			},
			{
				Name:   "databases",
				Weight: 0.15,
				Keywords: []string{
					"sql", "mongodb", "postgresql", "mysql", "oracle", "redis", "cassandra", "couchdb",
					"dynamodb", "mariadb", "neo4j", "elasticsearch", "firebase", "sqlite", "teradata",
					"hbase", "clickhouse", "db2", "hive", "arangodb", "influxdb", "bigquery", "data warehouse",
				},
			},
			{
				Name:   "soft_skills",
				Weight: 0.15,
				Keywords: []string{
					"leadership", "communication", "teamwork", "problem solving", "analytical", "critical thinking",
					"adaptability", "creativity", "conflict resolution", "time management", "empathy",
					"interpersonal skills", "negotiation", "decision making", "resilience", "work ethic",
					"organization", "public speaking", "emotional intelligence", "collaboration",
					"active listening", "coaching", "customer service", "client relationships",
					"relationship building", "strategic planning", "business strategy", "presentations",
					"team building",
				},
			},
			{
				Name:   "tools",
				Weight: 0.15,
				Keywords: []string{
					"git", "docker", "kubernetes", "jenkins", "aws", "azure", "gcp", "terraform", "ansible",
					"chef", "puppet", "circleci", "travisci", "vagrant", "splunk", "datadog", "newrelic",
					"sonarqube", "jira", "confluence", "slack", "bitbucket", "gitlab", "octopus deploy",
					"npm", "yarn", "postman", "selenium", "cypress", "grafana", "prometheus", "tableau",
					"power bi", "salesforce", "excel", "word", "outlook", "photoshop", "illustrator",
					"indesign", "microsoft office",
				},
			},
			{
				Name:   "certifications",
				Weight: 0.20,
				Keywords: []string{
					"aws certified", "google certified", "microsoft certified", "cisco certified",
					"comptia", "pmp", "scrum master", "cissp", "ceh", "six sigma", "itil", "ccnp",
					"ccna", "mcse", "azure fundamentals", "aws solutions architect", "aws developer",
					"aws sysops", "gcp associate", "oracle certified", "ibm certified", "red hat certified",
					"salesforce certified", "kubernetes certified", "data science certification",
					"machine learning certification", "blockchain certification", "cloud certification",
					"cfa", "cpa", "cism", "cgeit", "crisc",
				},
			},
		},
		EducationLevels: []EducationLevel{
			{Name: "phd", Weight: 1.0, Aliases: []string{"phd", "ph.d", "doctorate", "doctoral"}},
			{Name: "masters", Weight: 0.8, Aliases: []string{"masters", "master's", "msc", "m.s", "mba"}},
			{Name: "bachelors", Weight: 0.6, Aliases: []string{"bachelors", "bachelor's", "bsc", "b.s", "b.a", "undergraduate degree"}},
			{Name: "associates", Weight: 0.4, Aliases: []string{"associates", "associate's", "associate degree"}},
			{Name: "high_school", Weight: 0.2, Aliases: []string{"high school", "ged", "secondary school"}},
		},
		EducationFields: []string{
			"computer science", "software engineering", "information technology", "computer engineering",
			"data science", "mathematics", "information systems", "electrical engineering",
			"mechanical engineering", "statistics", "cybersecurity", "business information systems",
			"network engineering", "telecommunications", "artificial intelligence", "bioinformatics",
			"geographic information systems", "robotics", "computer programming", "software development",
			"game development", "data analytics", "machine learning", "human-computer interaction",
			"applied mathematics", "physics", "cognitive science", "data engineering", "cloud computing",
		},
		Weights: Weights{
			Skill:      0.4,
			Contact:    0.2,
			Experience: 0.2,
			Education:  0.2,
		},
		NeutralExperienceScore: 50,
		DefaultJobDescription:  "Any experience and skills",
	}
}
