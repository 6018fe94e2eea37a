package scorer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-relevance/internal/normalizer"
	"github.com/jonathan/resume-relevance/internal/semantic"
	"github.com/jonathan/resume-relevance/internal/types"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	engine := semantic.NewEngine(normalizer.New(nil, 0, nil), nil, semantic.Weights{}, nil)
	return New(engine, Weights{}, nil)
}

func backendResume() types.ResumeData {
	return types.ResumeData{
		Skills:         []string{"Python", "Django", "PostgreSQL", "Docker"},
		Certifications: []string{"AWS Solutions Architect"},
		WorkExperience: []types.Experience{
			{Title: "Backend Engineer", Years: 4, Description: "Built Python services with Django and PostgreSQL"},
			{Title: "Junior Developer", Years: 2, Description: "Maintained internal tooling in Python"},
		},
		FullText: "Backend engineer with six years of experience building Python web services using Django, PostgreSQL, and Docker on AWS.",
	}
}

func backendJob() types.JobDescription {
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

func TestEvaluate_PartialSkillMatchScenario(t *testing.T) {
	engine := semantic.NewEngine(normalizer.New(nil, 0, nil), nil, semantic.Weights{}, nil)
	s := New(engine, Weights{}, nil)

	resume := types.ResumeData{
		Skills: []string{"Python", "Django", "PostgreSQL"},
		WorkExperience: []types.Experience{
			{Title: "Backend Developer", Years: 3, Description: "Python web services with Django and PostgreSQL"},
		},
		FullText: "Backend developer building Python web services with Django and PostgreSQL.",
	}
	job := types.JobDescription{
		RequiredSkills: []string{"Python", "Django", "PostgreSQL", "Docker"},
		ExperienceRequirements: types.ExperienceRequirements{
			MinYearsExperience: 2,
		},
		Description: "Backend role covering Python, Django, PostgreSQL, and Docker.",
	}

	result := s.Evaluate(context.Background(), resume, job)

	coverage := findComponent(t, result.Components, ComponentSkillCoverage)
	// Required coverage 3/4 = 75%, no preferred skills, so the component
	// lands at 0.8*75 + 0.2*100.
	assert.InDelta(t, 80.0, coverage.Score, 1e-9)
	assert.Contains(t, coverage.Evidence[0], "75.0% (3/4)")
	assert.Contains(t, []types.Suitability{types.SuitabilityMedium, types.SuitabilityHigh}, result.SuitabilityVerdict)

	report, err := engine.ComprehensiveSimilarity(context.Background(), resume, job)
	require.NoError(t, err)
	assert.Contains(t, report.SkillMatch.MissingSkills, "Docker")
}

func TestEvaluate_StrongCandidate(t *testing.T) {
	s := newTestScorer(t)

	result := s.Evaluate(context.Background(), backendResume(), backendJob())

	assert.GreaterOrEqual(t, result.OverallScore, 75.0)
	assert.Equal(t, types.SuitabilityHigh, result.SuitabilityVerdict)
	require.Len(t, result.Components, 5)
	assert.NotEmpty(t, result.Strengths)
	assert.Equal(t, MethodologyVersion, result.MethodologyVersion)
	assert.NotZero(t, result.ID)
	assert.False(t, result.Timestamp.IsZero())
}

func TestEvaluate_Deterministic(t *testing.T) {
	s := newTestScorer(t)
	ctx := context.Background()

	first := s.Evaluate(ctx, backendResume(), backendJob())
	second := s.Evaluate(ctx, backendResume(), backendJob())

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.SuitabilityVerdict, second.SuitabilityVerdict)
	assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
	assert.Equal(t, first.Components, second.Components)
}

func TestEvaluate_WeakCandidate(t *testing.T) {
	s := newTestScorer(t)

	resume := types.ResumeData{
		Skills:   []string{"Carpentry", "Woodworking"},
		FullText: "Experienced carpenter specializing in custom furniture.",
	}
	result := s.Evaluate(context.Background(), resume, backendJob())

	assert.Less(t, result.OverallScore, 50.0)
	assert.NotEmpty(t, result.Weaknesses)
	assert.NotEmpty(t, result.Recommendations)
}

func TestEvaluate_EmptyInputs(t *testing.T) {
	s := newTestScorer(t)

	result := s.Evaluate(context.Background(), types.ResumeData{}, types.JobDescription{})

	require.NotNil(t, result)
	require.Len(t, result.Components, 5)
	// Every component falls back to its neutral score; nothing panics.
	for _, c := range result.Components {
		assert.GreaterOrEqual(t, c.Score, 0.0)
		assert.LessOrEqual(t, c.Score, 100.0)
	}
}

func TestEvaluate_NoSemanticEngine(t *testing.T) {
	s := New(nil, Weights{}, nil)

	result := s.Evaluate(context.Background(), backendResume(), backendJob())

	semantic := findComponent(t, result.Components, ComponentSemantic)
	assert.Equal(t, 50.0, semantic.Score)
	assert.Equal(t, 0.2, semantic.Confidence)
	assert.Contains(t, semantic.Evidence, "Semantic analysis not available")
}

func TestEvaluate_MonotoneInSkillOverlap(t *testing.T) {
	s := newTestScorer(t)
	ctx := context.Background()
	job := backendJob()

	weak := types.ResumeData{
		Skills:   []string{"Python"},
		FullText: "Python developer.",
	}
	strong := backendResume()

	weakScore := s.Evaluate(ctx, weak, job).OverallScore
	strongScore := s.Evaluate(ctx, strong, job).OverallScore
	assert.Greater(t, strongScore, weakScore)
}

func TestEvidenceSummary_Aggregation(t *testing.T) {
	s := newTestScorer(t)

	result := s.Evaluate(context.Background(), backendResume(), backendJob())
	summary := result.EvidenceSummary

	assert.Len(t, summary.MethodologyMix, 5)
	assert.Len(t, summary.ComponentContributions, 5)
	assert.Greater(t, summary.TotalEvidencePoints, 0)
	assert.Greater(t, summary.AverageConfidence, 0.0)
	assert.Empty(t, summary.Error)

	var weightedSum float64
	for _, contribution := range summary.ComponentContributions {
		weightedSum += contribution.WeightedScore
	}
	assert.InDelta(t, result.OverallScore, weightedSum, 1e-9)
}

func findComponent(t *testing.T, components []types.ScoringComponent, name string) types.ScoringComponent {
	t.Helper()
	for _, c := range components {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("component %q not found", name)
	return types.ScoringComponent{}
}
