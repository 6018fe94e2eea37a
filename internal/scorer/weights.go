package scorer

import "math"

// Weights are the blend weights for the five scoring components. They should
// sum to 1.0; Normalize rescales them when they do not.
type Weights struct {
	SemanticSimilarity    float64 `json:"semantic_similarity" validate:"gte=0,lte=1"`
	KeywordMatching       float64 `json:"keyword_matching" validate:"gte=0,lte=1"`
	ExperienceMatching    float64 `json:"experience_matching" validate:"gte=0,lte=1"`
	SkillCoverage         float64 `json:"skill_coverage" validate:"gte=0,lte=1"`
	CertificationMatching float64 `json:"certification_matching" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the standard component blend.
func DefaultWeights() Weights {
	return Weights{
		SemanticSimilarity:    0.40,
		KeywordMatching:       0.30,
		ExperienceMatching:    0.15,
		SkillCoverage:         0.10,
		CertificationMatching: 0.05,
	}
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.SemanticSimilarity + w.KeywordMatching + w.ExperienceMatching +
		w.SkillCoverage + w.CertificationMatching
}

// Normalize rescales the weights to sum to 1.0 and reports whether a rescale
// happened, so callers can surface the adjustment instead of silently
// accepting malformed configuration. A zero sum returns the defaults.
func (w Weights) Normalize() (Weights, bool) {
	total := w.Sum()
	if total == 0 {
		return DefaultWeights(), true
	}
	if math.Abs(total-1.0) <= 0.01 {
		return w, false
	}
	return Weights{
		SemanticSimilarity:    w.SemanticSimilarity / total,
		KeywordMatching:       w.KeywordMatching / total,
		ExperienceMatching:    w.ExperienceMatching / total,
		SkillCoverage:         w.SkillCoverage / total,
		CertificationMatching: w.CertificationMatching / total,
	}, true
}
