package scorer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-relevance/internal/semantic"
	"github.com/jonathan/resume-relevance/internal/types"
)

// MethodologyVersion tags every result with the scoring formula revision.
const MethodologyVersion = "2.0.0"

// Suitability thresholds on the 0-100 overall score.
const (
	highThreshold   = 75.0
	mediumThreshold = 50.0
	lowThreshold    = 25.0
)

// Scorer blends five independent scoring components into a single relevance
// result. It is stateless per call; a single instance is safe for concurrent
// use.
type Scorer struct {
	engine  *semantic.Engine
	weights Weights
	logger  *zap.Logger
}

// New builds a Scorer. engine may be nil to score without semantic analysis;
// zero weights select the defaults. Misconfigured weights are normalized and
// logged rather than rejected.
func New(engine *semantic.Engine, weights Weights, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	normalized, adjusted := weights.Normalize()
	if adjusted {
		logger.Warn("component weights did not sum to 1.0, normalized",
			zap.Float64("original_sum", weights.Sum()))
	}
	return &Scorer{
		engine:  engine,
		weights: normalized,
		logger:  logger,
	}
}

// Evaluate computes the full relevance score for one resume/job pair. It
// never returns an error: each component is isolated so one failure degrades
// that component only, and an unexpected panic anywhere is converted into an
// INSUFFICIENT_DATA result carrying the failure text.
func (s *Scorer) Evaluate(ctx context.Context, resume types.ResumeData, job types.JobDescription) (result *types.RelevanceScore) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("relevance scoring panicked", zap.Any("panic", r))
			result = s.errorScore(fmt.Sprintf("%v", r), start)
		}
	}()

	components := []types.ScoringComponent{
		s.guarded(ComponentKeyword, s.weights.KeywordMatching, func() types.ScoringComponent {
			return s.keywordMatching(resume, job)
		}),
		s.guarded(ComponentSemantic, s.weights.SemanticSimilarity, func() types.ScoringComponent {
			return s.semanticSimilarity(ctx, resume, job)
		}),
		s.guarded(ComponentExperience, s.weights.ExperienceMatching, func() types.ScoringComponent {
			return s.experienceMatching(resume, job)
		}),
		s.guarded(ComponentSkillCoverage, s.weights.SkillCoverage, func() types.ScoringComponent {
			return s.skillCoverage(resume, job)
		}),
		s.guarded(ComponentCertification, s.weights.CertificationMatching, func() types.ScoringComponent {
			return s.certificationMatching(resume, job)
		}),
	}

	var overall float64
	for _, c := range components {
		overall += c.WeightedScore()
	}
	overall = clampScore(overall)

	verdict := suitability(overall, components)
	confidenceScore, confidenceLevel := s.confidence(components, resume, job)
	strengths, weaknesses, recommendations := insights(components, overall)

	return &types.RelevanceScore{
		ID:                      uuid.New(),
		OverallScore:            overall,
		SuitabilityVerdict:      verdict,
		ConfidenceLevel:         confidenceLevel,
		ConfidenceScore:         confidenceScore,
		KeywordMatchScore:       components[0].Score,
		SemanticSimilarityScore: components[1].Score,
		ExperienceMatchScore:    components[2].Score,
		SkillCoverageScore:      components[3].Score,
		CertificationMatchScore: components[4].Score,
		Components:              components,
		Strengths:               strengths,
		Weaknesses:              weaknesses,
		Recommendations:         recommendations,
		EvidenceSummary:         evidenceSummary(components),
		Timestamp:               start.UTC(),
		ProcessingTime:          time.Since(start).Seconds(),
		MethodologyVersion:      MethodologyVersion,
	}
}

// guarded isolates one component computation: a panic inside it becomes a
// zero-score low-confidence component carrying the failure text, so the other
// components still contribute.
func (s *Scorer) guarded(name string, weight float64, compute func() types.ScoringComponent) (component types.ScoringComponent) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scoring component panicked",
				zap.String("component", name), zap.Any("panic", r))
			component = types.ScoringComponent{
				Name:        name,
				Score:       0,
				Weight:      weight,
				Confidence:  0.1,
				Evidence:    []string{fmt.Sprintf("Component failed: %v", r)},
				Methodology: "Failed component",
			}
		}
	}()
	return compute()
}

// suitability maps the overall score to a verdict. A sub-LOW score with at
// least half the components below 0.3 confidence means the inputs were too
// thin to judge at all.
func suitability(overall float64, components []types.ScoringComponent) types.Suitability {
	switch {
	case overall >= highThreshold:
		return types.SuitabilityHigh
	case overall >= mediumThreshold:
		return types.SuitabilityMedium
	case overall >= lowThreshold:
		return types.SuitabilityLow
	}
	lowConfidence := 0
	for _, c := range components {
		if c.Confidence < 0.3 {
			lowConfidence++
		}
	}
	if lowConfidence*2 >= len(components) {
		return types.SuitabilityInsufficientData
	}
	return types.SuitabilityLow
}

// evidenceSummary aggregates per-component evidence for the result.
func evidenceSummary(components []types.ScoringComponent) types.EvidenceSummary {
	summary := types.EvidenceSummary{
		MethodologyMix:         make([]string, 0, len(components)),
		ComponentContributions: make(map[string]types.ComponentContribution, len(components)),
	}
	var confidenceSum float64
	for _, c := range components {
		summary.TotalEvidencePoints += len(c.Evidence)
		summary.MethodologyMix = append(summary.MethodologyMix, c.Methodology)
		summary.ComponentContributions[c.Name] = types.ComponentContribution{
			WeightedScore: c.WeightedScore(),
			Confidence:    c.Confidence,
			EvidenceCount: len(c.Evidence),
		}
		confidenceSum += c.Confidence
	}
	if len(components) > 0 {
		summary.AverageConfidence = confidenceSum / float64(len(components))
	}
	return summary
}

// errorScore is the zero result returned when scoring itself fails.
func (s *Scorer) errorScore(message string, start time.Time) *types.RelevanceScore {
	return &types.RelevanceScore{
		ID:                 uuid.New(),
		SuitabilityVerdict: types.SuitabilityInsufficientData,
		ConfidenceLevel:    types.ConfidenceVeryLow,
		Components:         []types.ScoringComponent{},
		Strengths:          []string{},
		Weaknesses:         []string{fmt.Sprintf("Scoring failed: %s", message)},
		Recommendations:    []string{"Please check input data quality and try again"},
		EvidenceSummary:    types.EvidenceSummary{Error: message},
		Timestamp:          start.UTC(),
		ProcessingTime:     time.Since(start).Seconds(),
		MethodologyVersion: MethodologyVersion,
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
