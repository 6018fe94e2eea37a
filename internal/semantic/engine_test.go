package semantic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-relevance/internal/embedding"
	"github.com/jonathan/resume-relevance/internal/normalizer"
	"github.com/jonathan/resume-relevance/internal/types"
)

func newTestEngine(t *testing.T, similarity *embedding.Similarity) *Engine {
	t.Helper()
	return NewEngine(normalizer.New(nil, 0, nil), similarity, Weights{}, nil)
}

func sampleResume() types.ResumeData {
	return types.ResumeData{
		Skills:         []string{"Python", "Django", "PostgreSQL", "Docker"},
		Certifications: []string{"AWS Solutions Architect"},
		WorkExperience: []types.Experience{
			{Title: "Backend Engineer", Years: 4, Description: "Built Python services with Django and PostgreSQL"},
			{Title: "Junior Developer", Years: 2, Description: "Maintained internal tools"},
		},
		FullText: "Backend engineer with six years of experience building Python web services using Django, PostgreSQL, and Docker on AWS.",
	}
}

func sampleJob() types.JobDescription {
	return types.JobDescription{
		RequiredSkills:         []string{"Python", "Django", "PostgreSQL"},
		PreferredSkills:        []string{"Docker"},
		RequiredCertifications: []string{"AWS Solutions Architect"},
		ExperienceRequirements: types.ExperienceRequirements{
			MinYearsExperience: 3,
			SeniorityLevel:     "mid",
			RelevantKeywords:   []string{"python", "django", "postgresql"},
		},
		Description: "We need a backend engineer with strong Python and Django experience, comfortable with PostgreSQL and Docker deployments.",
	}
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	for _, withEmbeddings := range []bool{true, false} {
		w := DefaultWeights(withEmbeddings)
		sum := w.SkillMatch + w.CategorySimilarity + w.TextSimilarity +
			w.TransformerMatch + w.CertificationMatch + w.ExperienceRelevance
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestComprehensiveSimilarity_StrongMatch(t *testing.T) {
	e := newTestEngine(t, nil)

	report, err := e.ComprehensiveSimilarity(context.Background(), sampleResume(), sampleJob())
	require.NoError(t, err)

	assert.Greater(t, report.OverallScore, 0.6)
	assert.False(t, report.EmbeddingDegraded)
	assert.NotContains(t, report.ComponentScores, "transformer_similarity")

	// All required skills are present, so coverage is full.
	assert.Equal(t, 1.0, report.SkillMatch.CoverageScore)
	assert.Empty(t, report.SkillMatch.MissingSkills)
	assert.Equal(t, 1.0, report.Certification.Score)
}

func TestComprehensiveSimilarity_Deterministic(t *testing.T) {
	e := newTestEngine(t, nil)

	first, err := e.ComprehensiveSimilarity(context.Background(), sampleResume(), sampleJob())
	require.NoError(t, err)
	second, err := e.ComprehensiveSimilarity(context.Background(), sampleResume(), sampleJob())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSkillSimilarity_MissingSkill(t *testing.T) {
	e := newTestEngine(t, nil)

	detail := e.skillSimilarity([]string{"Python"}, []string{"Python", "Kubernetes"})
	assert.Contains(t, detail.MissingSkills, "Kubernetes")
	assert.InDelta(t, 0.5, detail.CoverageScore, 1e-9)
	assert.InDelta(t, 0.5*0.6+0.5*0.4, detail.Score, 1e-9)
}

func TestSkillSimilarity_EmptyInputs(t *testing.T) {
	e := newTestEngine(t, nil)

	detail := e.skillSimilarity(nil, []string{"Python"})
	assert.Equal(t, 0.0, detail.Score)
	assert.Equal(t, []string{"Python"}, detail.MissingSkills)
}

func TestCategorySimilarity_IdenticalDistributions(t *testing.T) {
	e := newTestEngine(t, nil)

	detail := e.categorySimilarity([]string{"Python", "Docker"}, []string{"JavaScript", "Kubernetes"})
	// Both sides have one programming language and one cloud platform skill.
	assert.InDelta(t, 1.0, detail.Score, 1e-9)
	assert.Contains(t, detail.CommonCategories, "programming_languages")
	assert.Contains(t, detail.CommonCategories, "cloud_platforms")
}

func TestTextSimilarity_NoProvider(t *testing.T) {
	e := newTestEngine(t, nil)

	detail, degraded := e.textSimilarity(context.Background(), "python developer", "python developer")
	assert.False(t, degraded)
	assert.False(t, detail.EmbeddingUsed)
	assert.InDelta(t, 1.0, detail.Score, 1e-9)
}

func TestTextSimilarity_UnavailableProviderDegrades(t *testing.T) {
	e := newTestEngine(t, embedding.NewSimilarity(embedding.Disabled{}))

	detail, degraded := e.textSimilarity(context.Background(), "python developer", "python developer")
	assert.True(t, degraded)
	assert.False(t, detail.EmbeddingUsed)
	assert.InDelta(t, 1.0, detail.Score, 1e-9, "tfidf signal must survive degradation")
}

func TestComprehensiveSimilarity_DegradedUsesLexicalWeights(t *testing.T) {
	e := newTestEngine(t, embedding.NewSimilarity(embedding.Disabled{}))

	report, err := e.ComprehensiveSimilarity(context.Background(), sampleResume(), sampleJob())
	require.NoError(t, err)
	assert.True(t, report.EmbeddingDegraded)
	assert.NotContains(t, report.ComponentScores, "transformer_similarity")
}

func TestCertificationSimilarity_NoneRequired(t *testing.T) {
	e := newTestEngine(t, nil)

	detail := e.certificationSimilarity([]string{"CISSP"}, nil)
	assert.Equal(t, 1.0, detail.Score)
}

func TestCertificationSimilarity_Missing(t *testing.T) {
	e := newTestEngine(t, nil)

	detail := e.certificationSimilarity(nil, []string{"CISSP"})
	assert.Equal(t, 0.0, detail.Score)
	assert.Equal(t, []string{"CISSP"}, detail.MissingCertifications)
}

func TestExperienceRelevance_MeetsRequirement(t *testing.T) {
	e := newTestEngine(t, nil)

	detail := e.experienceRelevance(
		[]types.Experience{
			{Title: "Python Developer", Years: 5, Description: "django services"},
		},
		types.ExperienceRequirements{
			MinYearsExperience: 3,
			SeniorityLevel:     "mid",
			RelevantKeywords:   []string{"python", "django"},
		},
	)

	assert.True(t, detail.YearsRequirementMet)
	assert.False(t, detail.ExperienceGap)
	assert.Equal(t, 5.0, detail.RelevantYears)
	// years score 1.0, seniority 1.0 (5 years inside mid band 3-7).
	assert.InDelta(t, 1.0, detail.Score, 1e-9)
}

func TestExperienceRelevance_IrrelevantRolesExcluded(t *testing.T) {
	e := newTestEngine(t, nil)

	detail := e.experienceRelevance(
		[]types.Experience{
			{Title: "Chef", Years: 10, Description: "restaurant kitchen management"},
		},
		types.ExperienceRequirements{
			MinYearsExperience: 3,
			RelevantKeywords:   []string{"python", "django", "postgresql"},
		},
	)

	assert.Equal(t, 0.0, detail.RelevantYears)
	assert.True(t, detail.ExperienceGap)
	assert.Empty(t, detail.RelevantRoles)
}

func TestExperienceRelevance_NoExperience(t *testing.T) {
	e := newTestEngine(t, nil)

	detail := e.experienceRelevance(nil, types.ExperienceRequirements{MinYearsExperience: 2})
	assert.Equal(t, 0.0, detail.Score)
	assert.True(t, detail.ExperienceGap)
}

func TestSeniorityMatch(t *testing.T) {
	tests := []struct {
		years    float64
		level    string
		expected float64
	}{
		{5, "mid", 1.0},
		{1.5, "mid", 0.5},
		{12, "mid", 0.7},  // over-qualified floor
		{17, "mid", 0.7},  // floor holds even far over
		{8, "senior", 1.0},
		{0, "entry", 1.0},
		{4, "wizard", 0.5}, // unknown level is neutral
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, seniorityMatch(tt.years, tt.level), 1e-9,
			"years=%v level=%s", tt.years, tt.level)
	}
}

func TestKeywordOverlap(t *testing.T) {
	assert.InDelta(t, 0.5, keywordOverlap("any text", nil), 1e-9)
	assert.InDelta(t, 1.0, keywordOverlap("built python django apps", []string{"python", "django"}), 1e-9)
	assert.InDelta(t, 0.5, keywordOverlap("built python apps", []string{"python", "django"}), 1e-9)
	assert.InDelta(t, 0.0, keywordOverlap("cooking pastry", []string{"python"}), 1e-9)
}

func TestAnnotate_MatchQualityBuckets(t *testing.T) {
	e := newTestEngine(t, nil)

	tests := []struct {
		score    float64
		expected string
	}{
		{0.9, QualityExcellent},
		{0.7, QualityGood},
		{0.5, QualityModerate},
		{0.2, QualityPoor},
	}
	for _, tt := range tests {
		r := &Report{OverallScore: tt.score}
		e.annotate(r)
		assert.Equal(t, tt.expected, r.MatchQuality, "score %v", tt.score)
	}
}

func TestAnnotate_WeaknessesCarryRecommendations(t *testing.T) {
	e := newTestEngine(t, nil)

	r := &Report{
		OverallScore:  0.3,
		SkillMatch:    SkillMatchDetail{Score: 0.2, MissingSkills: []string{"Go", "Rust", "Kubernetes", "Terraform"}},
		Certification: CertificationDetail{Score: 0.9},
		Experience:    ExperienceDetail{Score: 0.9},
		Category:      CategoryDetail{Score: 0.8},
		Text:          TextDetail{Score: 0.6},
	}
	e.annotate(r)

	assert.Contains(t, r.Weaknesses, "Skills")
	assert.Contains(t, r.Recommendations, "Consider developing missing technical skills")
	assert.Contains(t, r.Strengths, "Certifications")

	require.NotEmpty(t, r.KeyInsights)
	assert.Contains(t, r.KeyInsights[0], "Missing 4 key skills")
	assert.Contains(t, r.KeyInsights[0], "Go, Rust, Kubernetes")
}
