package normalizer

import (
	"github.com/jonathan/resume-relevance/internal/types"
)

// highConfidenceThreshold separates high- from low-confidence matches in
// list statistics.
const highConfidenceThreshold = 0.8

// NormalizeSkillList normalizes every skill in the input and returns the
// aggregated analysis including category distribution and skill vectors.
func (n *Normalizer) NormalizeSkillList(skills []string) types.SkillListAnalysis {
	normalized := make([]types.NormalizedSkill, 0, len(skills))
	categoryCounts := make(map[string]int)

	for _, skill := range skills {
		result := n.NormalizeSkill(skill)
		normalized = append(normalized, result)

		if result.Category != "" && result.Category != "unknown" {
			categoryCounts[result.Category]++
		}
	}

	return types.SkillListAnalysis{
		NormalizedSkills:     normalized,
		Statistics:           computeStatistics(normalized),
		CategoryDistribution: categoryCounts,
		SkillVectors:         computeSkillVectors(normalized),
	}
}

// NormalizeCertificationList normalizes every certification in the input.
func (n *Normalizer) NormalizeCertificationList(certifications []string) types.CertificationListAnalysis {
	normalized := make([]types.NormalizedSkill, 0, len(certifications))
	categoryCounts := make(map[string]int)

	for _, cert := range certifications {
		result := n.NormalizeCertification(cert)
		normalized = append(normalized, result)

		if result.Category != "" && result.Category != "unknown" {
			categoryCounts[result.Category]++
		}
	}

	return types.CertificationListAnalysis{
		NormalizedCertifications: normalized,
		Statistics:               computeStatistics(normalized),
		CategoryDistribution:     categoryCounts,
	}
}

func computeStatistics(normalized []types.NormalizedSkill) types.SkillStatistics {
	stats := types.SkillStatistics{Total: len(normalized)}

	var confidenceSum float64
	for _, s := range normalized {
		if s.MatchType != types.MatchNone {
			stats.NormalizedCount++
		}
		confidenceSum += s.Confidence
		if s.Confidence > highConfidenceThreshold {
			stats.HighConfidenceCount++
		}
	}
	stats.LowConfidenceCount = stats.Total - stats.HighConfidenceCount

	if stats.Total > 0 {
		stats.AverageConfidence = confidenceSum / float64(stats.Total)
	}
	return stats
}

// computeSkillVectors builds the confidence-weighted category fingerprint:
// per category, the sum of member confidences divided by the total skill
// count. Each skill contributes at most its confidence; the vector is not
// globally normalized.
func computeSkillVectors(normalized []types.NormalizedSkill) map[string]float64 {
	vectors := make(map[string]float64)
	if len(normalized) == 0 {
		return vectors
	}

	for _, s := range normalized {
		if s.Category == "" || s.Category == "unknown" {
			continue
		}
		vectors[s.Category] += s.Confidence
	}

	total := float64(len(normalized))
	for category := range vectors {
		vectors[category] /= total
	}
	return vectors
}
