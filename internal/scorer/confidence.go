package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-relevance/internal/types"
)

// Confidence factor weights, fixed by the methodology version.
const (
	completenessWeight = 0.3
	consistencyWeight  = 0.25
	evidenceWeight     = 0.25
	methodologyWeight  = 0.2
)

// confidence blends data completeness, score consistency, evidence strength,
// and methodology reliability into a single 0-1 confidence with its bucket.
func (s *Scorer) confidence(components []types.ScoringComponent, resume types.ResumeData, job types.JobDescription) (float64, types.ConfidenceLevel) {
	completeness := (resumeCompleteness(resume) + jobCompleteness(job)) / 2

	scores := make([]float64, len(components))
	for i, c := range components {
		scores[i] = c.Score
	}
	consistency := math.Max(0.0, 1.0-variance(scores)/1000)

	var confidenceSum float64
	for _, c := range components {
		confidenceSum += c.Confidence
	}
	evidenceStrength := 0.0
	if len(components) > 0 {
		evidenceStrength = confidenceSum / float64(len(components))
	}

	methodologyReliability := 0.6
	for _, c := range components {
		if c.Name == ComponentSemantic && c.Confidence > 0.5 {
			methodologyReliability = 0.9
			break
		}
	}

	score := completeness*completenessWeight +
		consistency*consistencyWeight +
		evidenceStrength*evidenceWeight +
		methodologyReliability*methodologyWeight

	return score, confidenceLevel(score)
}

func confidenceLevel(score float64) types.ConfidenceLevel {
	switch {
	case score >= 0.85:
		return types.ConfidenceVeryHigh
	case score >= 0.70:
		return types.ConfidenceHigh
	case score >= 0.55:
		return types.ConfidenceModerate
	case score >= 0.35:
		return types.ConfidenceLow
	default:
		return types.ConfidenceVeryLow
	}
}

// resumeCompleteness scores how much of the resume's scoring-relevant data is
// present: more list items and longer text raise the score, capped at 1 per
// field, averaged over the fields.
func resumeCompleteness(resume types.ResumeData) float64 {
	fields := []float64{
		listCompleteness(len(resume.Skills)),
		listCompleteness(len(resume.WorkExperience)),
		0,
		stringCompleteness(resume.FullText),
	}
	return average(fields)
}

func jobCompleteness(job types.JobDescription) float64 {
	fields := []float64{
		listCompleteness(len(job.RequiredSkills)),
		0,
		stringCompleteness(job.Description),
		0,
	}
	return average(fields)
}

func listCompleteness(n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Min(1.0, float64(n)/3)
}

func stringCompleteness(s string) float64 {
	if s == "" {
		return 0
	}
	return math.Min(1.0, float64(len(s))/100)
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// componentRecommendations maps a weak component to its improvement advice.
var componentRecommendations = map[string]string{
	ComponentKeyword:       "Include more relevant technical keywords in resume",
	ComponentSkillCoverage: "Develop skills in required technologies",
	ComponentExperience:    "Highlight relevant project experience",
	ComponentCertification: "Consider obtaining relevant certifications",
}

// insights derives strengths, weaknesses, and recommendations from
// per-component thresholds plus an overall-score callout.
func insights(components []types.ScoringComponent, overall float64) (strengths, weaknesses, recommendations []string) {
	strengths = []string{}
	weaknesses = []string{}
	recommendations = []string{}

	for _, c := range components {
		switch {
		case c.Score >= 75.0:
			strengths = append(strengths, fmt.Sprintf("Strong %s: %.1f%%", strings.ToLower(c.Name), c.Score))
		case c.Score <= 40.0:
			weaknesses = append(weaknesses, fmt.Sprintf("Weak %s: %.1f%%", strings.ToLower(c.Name), c.Score))
			if rec, ok := componentRecommendations[c.Name]; ok {
				recommendations = append(recommendations, rec)
			}
		}
	}

	if overall >= 80 {
		strengths = append(strengths, fmt.Sprintf("Excellent overall match: %.1f%%", overall))
	} else if overall <= 30 {
		weaknesses = append(weaknesses, fmt.Sprintf("Low overall relevance: %.1f%%", overall))
	}
	return strengths, weaknesses, recommendations
}
