// Package types provides type definitions for structured data used throughout the relevance scoring system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// ResumeData represents parsed resume content supplied by an upstream parser.
// The scoring core consumes this structure as-is; it never reads resume files itself.
type ResumeData struct {
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications,omitempty"`
	WorkExperience []Experience `json:"work_experience,omitempty"`
	FullText       string       `json:"full_text,omitempty"`
}

// Experience represents a single role on a resume.
type Experience struct {
	Title       string  `json:"title"`
	Years       float64 `json:"years"`
	Description string  `json:"description,omitempty"`
}

// TotalYears returns the sum of years across all roles.
func (r *ResumeData) TotalYears() float64 {
	var total float64
	for _, exp := range r.WorkExperience {
		total += exp.Years
	}
	return total
}

// UnmarshalJSON accepts both "work_experience" and the legacy "experience" key
// so records produced by older parsers remain readable.
func (r *ResumeData) UnmarshalJSON(data []byte) error {
	type alias ResumeData
	aux := struct {
		*alias
		LegacyExperience []Experience `json:"experience"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(r.WorkExperience) == 0 && len(aux.LegacyExperience) > 0 {
		r.WorkExperience = aux.LegacyExperience
	}
	return nil
}

// UnmarshalJSON accepts both "years" and the legacy "duration_years" key.
func (e *Experience) UnmarshalJSON(data []byte) error {
	type alias Experience
	aux := struct {
		*alias
		DurationYears float64 `json:"duration_years"`
	}{alias: (*alias)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if e.Years == 0 && aux.DurationYears > 0 {
		e.Years = aux.DurationYears
	}
	return nil
}
