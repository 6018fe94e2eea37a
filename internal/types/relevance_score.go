package types

import (
	"time"

	"github.com/google/uuid"
)

// Suitability is the coarse verdict derived from the overall score.
type Suitability string

// Suitability verdicts. The string values are part of the serialized
// contract with downstream consumers and must not change.
const (
	SuitabilityHigh             Suitability = "High"
	SuitabilityMedium           Suitability = "Medium"
	SuitabilityLow              Suitability = "Low"
	SuitabilityInsufficientData Suitability = "Insufficient Data"
)

func (s Suitability) String() string { return string(s) }

// ConfidenceLevel buckets the 0-1 confidence score for human consumption.
type ConfidenceLevel string

func (c ConfidenceLevel) String() string { return string(c) }

// Confidence levels, highest to lowest.
const (
	ConfidenceVeryHigh ConfidenceLevel = "Very High"
	ConfidenceHigh     ConfidenceLevel = "High"
	ConfidenceModerate ConfidenceLevel = "Moderate"
	ConfidenceLow      ConfidenceLevel = "Low"
	ConfidenceVeryLow  ConfidenceLevel = "Very Low"
)

// ScoringComponent is one independently computed scoring dimension.
// Score is 0-100, Weight and Confidence are 0-1. Immutable once created.
type ScoringComponent struct {
	Name        string   `json:"name"`
	Score       float64  `json:"score"`
	Weight      float64  `json:"weight"`
	Confidence  float64  `json:"confidence"`
	Evidence    []string `json:"evidence"`
	Methodology string   `json:"methodology"`
}

// WeightedScore returns the component's contribution to the overall score.
func (c ScoringComponent) WeightedScore() float64 {
	return c.Score * c.Weight
}

// ComponentContribution summarizes one component inside the evidence summary.
type ComponentContribution struct {
	WeightedScore float64 `json:"weighted_score"`
	Confidence    float64 `json:"confidence"`
	EvidenceCount int     `json:"evidence_count"`
}

// EvidenceSummary aggregates evidence across all components.
type EvidenceSummary struct {
	TotalEvidencePoints    int                              `json:"total_evidence_points"`
	AverageConfidence      float64                          `json:"average_confidence"`
	MethodologyMix         []string                         `json:"methodology_mix"`
	ComponentContributions map[string]ComponentContribution `json:"component_contributions"`
	Error                  string                           `json:"error,omitempty"`
}

// RelevanceScore is the complete result of one resume/job evaluation.
// Created fresh per evaluation and never mutated after construction.
type RelevanceScore struct {
	ID uuid.UUID `json:"id"`

	OverallScore       float64         `json:"overall_score"`
	SuitabilityVerdict Suitability     `json:"suitability_verdict"`
	ConfidenceLevel    ConfidenceLevel `json:"confidence_level"`
	ConfidenceScore    float64         `json:"confidence_score"`

	KeywordMatchScore       float64 `json:"keyword_match_score"`
	SemanticSimilarityScore float64 `json:"semantic_similarity_score"`
	ExperienceMatchScore    float64 `json:"experience_match_score"`
	SkillCoverageScore      float64 `json:"skill_coverage_score"`
	CertificationMatchScore float64 `json:"certification_match_score"`

	Components      []ScoringComponent `json:"components"`
	Strengths       []string           `json:"strengths"`
	Weaknesses      []string           `json:"weaknesses"`
	Recommendations []string           `json:"recommendations"`
	EvidenceSummary EvidenceSummary    `json:"evidence_summary"`

	Timestamp          time.Time `json:"timestamp"`
	ProcessingTime     float64   `json:"processing_time"`
	MethodologyVersion string    `json:"methodology_version"`
}
