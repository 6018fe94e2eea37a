package types

// JobDescription represents the requirements and text of a job posting.
// Produced by an external job-description store; consumed by the scoring core.
type JobDescription struct {
	RequiredSkills          []string               `json:"required_skills"`
	PreferredSkills         []string               `json:"preferred_skills,omitempty"`
	RequiredCertifications  []string               `json:"required_certifications,omitempty"`
	PreferredCertifications []string               `json:"preferred_certifications,omitempty"`
	ExperienceRequirements  ExperienceRequirements `json:"experience_requirements,omitempty"`
	Description             string                 `json:"description,omitempty"`
}

// ExperienceRequirements captures the experience-related portion of a job posting.
type ExperienceRequirements struct {
	MinYearsExperience       float64  `json:"min_years_experience,omitempty"`
	PreferredYearsExperience float64  `json:"preferred_years_experience,omitempty"`
	MaxYearsExperience       float64  `json:"max_years_experience,omitempty"`
	SeniorityLevel           string   `json:"seniority_level,omitempty"`
	RelevantKeywords         []string `json:"relevant_keywords,omitempty"`
}
