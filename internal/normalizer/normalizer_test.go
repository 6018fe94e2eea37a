package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-relevance/internal/types"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return New(nil, 0, nil)
}

func TestNormalizeSkill_ExactMatch(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.NormalizeSkill("Python")
	assert.Equal(t, "Python", result.Normalized)
	assert.Equal(t, types.MatchExact, result.MatchType)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, "programming_languages", result.Category)
}

func TestNormalizeSkill_SynonymResolvesToCanonical(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"K8s", "Kubernetes"},
		{"JS", "JavaScript"},
		{"py", "Python"},
	}
	for _, tt := range tests {
		result := n.NormalizeSkill(tt.input)
		assert.Equal(t, tt.expected, result.Normalized, "input %q", tt.input)
		assert.Equal(t, types.MatchExact, result.MatchType)
		assert.Equal(t, 1.0, result.Confidence)
	}
}

func TestNormalizeSkill_CleansQualifiers(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []string{
		"experience with Python",
		"Proficient in Python",
		"Python programming",
		"Python 3.11",
		"Python (advanced)",
	}
	for _, input := range tests {
		result := n.NormalizeSkill(input)
		assert.Equal(t, "Python", result.Normalized, "input %q", input)
		assert.Equal(t, input, result.Original)
	}
}

func TestNormalizeSkill_FuzzyMatch(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.NormalizeSkill("Kubernets")
	assert.Equal(t, "Kubernetes", result.Normalized)
	assert.Equal(t, types.MatchFuzzy, result.MatchType)
	assert.Greater(t, result.Confidence, 0.7)
	assert.Less(t, result.Confidence, 1.0)
}

func TestNormalizeSkill_NoMatch(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.NormalizeSkill("underwater basket weaving")
	assert.Equal(t, types.MatchNone, result.MatchType)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, "unknown", result.Category)
	assert.Equal(t, "underwater basket weaving", result.Normalized)
}

func TestNormalizeSkill_BlankInput(t *testing.T) {
	n := newTestNormalizer(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		result := n.NormalizeSkill(input)
		assert.Equal(t, types.MatchNone, result.MatchType)
		assert.Equal(t, 0.0, result.Confidence)
	}
}

func TestNormalizeSkill_Deterministic(t *testing.T) {
	n := newTestNormalizer(t)

	first := n.NormalizeSkill("Kubernets")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, n.NormalizeSkill("Kubernets"))
	}
}

func TestNormalizeCertification_TokenSetTolerance(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.NormalizeCertification("AWS Certified Solutions Architect - Associate")
	assert.Equal(t, types.MatchFuzzy, result.MatchType)
	assert.Equal(t, "AWS Solutions Architect", result.Normalized)
	assert.GreaterOrEqual(t, result.Confidence, 0.7)
	assert.Equal(t, "cloud_certifications", result.Category)
}

func TestNormalizeCertification_NoMatch(t *testing.T) {
	n := newTestNormalizer(t)

	result := n.NormalizeCertification("Licensed Scuba Diver")
	assert.Equal(t, types.MatchNone, result.MatchType)
}

func TestNormalizeSkillList_Statistics(t *testing.T) {
	n := newTestNormalizer(t)

	analysis := n.NormalizeSkillList([]string{"Python", "K8s", "nonexistent skill xyz"})
	require.Len(t, analysis.NormalizedSkills, 3)

	assert.Equal(t, 3, analysis.Statistics.Total)
	assert.Equal(t, 2, analysis.Statistics.NormalizedCount)
	assert.Equal(t, 2, analysis.Statistics.HighConfidenceCount)
	assert.Equal(t, 1, analysis.Statistics.LowConfidenceCount)
	assert.InDelta(t, 2.0/3.0, analysis.Statistics.AverageConfidence, 0.01)
}

func TestNormalizeSkillList_CategoryDistribution(t *testing.T) {
	n := newTestNormalizer(t)

	analysis := n.NormalizeSkillList([]string{"Python", "JavaScript", "Kubernetes"})
	assert.Equal(t, 2, analysis.CategoryDistribution["programming_languages"])
	assert.Equal(t, 1, analysis.CategoryDistribution["cloud_platforms"])
}

func TestNormalizeSkillList_SkillVectors(t *testing.T) {
	n := newTestNormalizer(t)

	analysis := n.NormalizeSkillList([]string{"Python", "JavaScript", "Kubernetes", "gibberish xyz"})

	// Vector per category: sum of confidences over total input count.
	assert.InDelta(t, 0.5, analysis.SkillVectors["programming_languages"], 0.01)
	assert.InDelta(t, 0.25, analysis.SkillVectors["cloud_platforms"], 0.01)
	assert.NotContains(t, analysis.SkillVectors, "unknown")
}

func TestNormalizeSkillList_Empty(t *testing.T) {
	n := newTestNormalizer(t)

	analysis := n.NormalizeSkillList(nil)
	assert.Empty(t, analysis.NormalizedSkills)
	assert.Equal(t, 0, analysis.Statistics.Total)
}

func TestCalculateSkillSimilarity(t *testing.T) {
	n := newTestNormalizer(t)

	sim := n.CalculateSkillSimilarity(
		[]string{"Python", "Docker", "Kubernetes"},
		[]string{"Python", "AWS"},
	)

	// Intersection {Python}, union {Python, Docker, Kubernetes, AWS}.
	assert.InDelta(t, 0.25, sim.JaccardSimilarity, 0.01)
	assert.Equal(t, []string{"Python"}, sim.CommonSkills)
	assert.Contains(t, sim.UniqueToFirst, "Docker")
	assert.Contains(t, sim.UniqueToSecond, "Amazon Web Services")
}

func TestCalculateSkillSimilarity_Identical(t *testing.T) {
	n := newTestNormalizer(t)

	sim := n.CalculateSkillSimilarity([]string{"Python", "AWS"}, []string{"py", "Amazon AWS"})
	assert.Equal(t, 1.0, sim.JaccardSimilarity)
}

func TestCalculateSkillSimilarity_IdenticalUnmatchableLists(t *testing.T) {
	n := newTestNormalizer(t)

	// Nothing here maps onto the taxonomy; the cleaned inputs still form
	// identical sets on both sides.
	skills := []string{"underwater basket weaving", "competitive yodeling"}
	sim := n.CalculateSkillSimilarity(skills, skills)

	assert.Equal(t, 1.0, sim.JaccardSimilarity)
	assert.Len(t, sim.CommonSkills, 2)
	assert.Empty(t, sim.UniqueToFirst)
	assert.Empty(t, sim.UniqueToSecond)
}

func TestCalculateSkillSimilarity_EmptySide(t *testing.T) {
	n := newTestNormalizer(t)

	sim := n.CalculateSkillSimilarity([]string{"Python", "Docker"}, nil)

	assert.Equal(t, 0.0, sim.JaccardSimilarity)
	assert.Empty(t, sim.CommonSkills)
	assert.Len(t, sim.UniqueToFirst, 2)
	assert.Empty(t, sim.UniqueToSecond)
}

func TestSkillRecommendations_MissingCategories(t *testing.T) {
	n := newTestNormalizer(t)

	recs := n.SkillRecommendations([]string{"HTML", "CSS"}, "full_stack_developer")
	assert.NotEmpty(t, recs.RecommendedSkills)
	assert.LessOrEqual(t, len(recs.RecommendedSkills), 15)
}

func TestSkillRecommendations_UnknownRole(t *testing.T) {
	n := newTestNormalizer(t)

	recs := n.SkillRecommendations([]string{"Python"}, "astronaut")
	assert.Empty(t, recs.RecommendedSkills)
}

func TestKnownRoles(t *testing.T) {
	roles := KnownRoles()
	assert.Contains(t, roles, "full_stack_developer")
	assert.Contains(t, roles, "data_scientist")
}
