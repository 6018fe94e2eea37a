package scorer

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-relevance/internal/types"
)

// Component names. These appear verbatim in serialized results.
const (
	ComponentKeyword       = "Keyword Matching"
	ComponentSemantic      = "Semantic Similarity"
	ComponentExperience    = "Experience Matching"
	ComponentSkillCoverage = "Skill Coverage"
	ComponentCertification = "Certification Matching"
)

// techPatterns pull additional required keywords out of the job text beyond
// the explicitly listed skills.
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(python|java|javascript|react|node\.?js|sql|aws|docker|kubernetes)\b`),
	regexp.MustCompile(`(?i)\b(machine learning|deep learning|ai|ml|nlp|computer vision)\b`),
	regexp.MustCompile(`(?i)\b(agile|scrum|devops|ci/cd|microservices|api)\b`),
}

// keywordMatching scores the literal presence of required and preferred
// skill strings inside the resume text, required weighted 0.8 over 0.2.
// Confidence scales with how many keywords there were to check.
func (s *Scorer) keywordMatching(resume types.ResumeData, job types.JobDescription) types.ScoringComponent {
	resumeText := strings.ToLower(resume.FullText)
	jobText := strings.ToLower(job.Description)

	required := make(map[string]struct{})
	preferred := make(map[string]struct{})
	for _, skill := range job.RequiredSkills {
		required[strings.ToLower(skill)] = struct{}{}
	}
	for _, skill := range job.PreferredSkills {
		preferred[strings.ToLower(skill)] = struct{}{}
	}
	for _, pattern := range techPatterns {
		for _, m := range pattern.FindAllString(jobText, -1) {
			required[strings.ToLower(m)] = struct{}{}
		}
	}

	var requiredMatches, preferredMatches int
	matchedSet := make(map[string]struct{})
	for keyword := range required {
		if strings.Contains(resumeText, keyword) {
			requiredMatches++
			matchedSet[keyword] = struct{}{}
		}
	}
	for keyword := range preferred {
		if strings.Contains(resumeText, keyword) {
			preferredMatches++
			matchedSet[keyword] = struct{}{}
		}
	}

	var score, confidence float64
	totalRequired := len(required)
	totalPreferred := len(preferred)
	if totalRequired == 0 && totalPreferred == 0 {
		score = 50.0
		confidence = 0.3
	} else {
		var requiredScore, preferredScore float64
		if totalRequired > 0 {
			requiredScore = float64(requiredMatches) / float64(totalRequired) * 100
		}
		if totalPreferred > 0 {
			preferredScore = float64(preferredMatches) / float64(totalPreferred) * 100
		}
		score = 0.8*requiredScore + 0.2*preferredScore
		confidence = math.Min(0.9, float64(totalRequired+totalPreferred)/20)
	}

	matched := make([]string, 0, len(matchedSet))
	for k := range matchedSet {
		matched = append(matched, k)
	}
	sort.Strings(matched)

	return types.ScoringComponent{
		Name:       ComponentKeyword,
		Score:      score,
		Weight:     s.weights.KeywordMatching,
		Confidence: confidence,
		Evidence: []string{
			fmt.Sprintf("Matched %d/%d required keywords", requiredMatches, totalRequired),
			fmt.Sprintf("Matched %d/%d preferred keywords", preferredMatches, totalPreferred),
			fmt.Sprintf("Keywords found: %s", joinCapped(matched, 5)),
		},
		Methodology: "Hard keyword matching with regex patterns",
	}
}

// semanticSimilarity delegates to the similarity engine. With no engine
// wired, or on engine failure, the component goes neutral with low
// confidence instead of failing the evaluation.
func (s *Scorer) semanticSimilarity(ctx context.Context, resume types.ResumeData, job types.JobDescription) types.ScoringComponent {
	if s.engine == nil {
		return types.ScoringComponent{
			Name:        ComponentSemantic,
			Score:       50.0,
			Weight:      s.weights.SemanticSimilarity,
			Confidence:  0.2,
			Evidence:    []string{"Semantic analysis not available"},
			Methodology: "Fallback to neutral scoring",
		}
	}

	report, err := s.engine.ComprehensiveSimilarity(ctx, resume, job)
	if err != nil {
		s.logger.Warn("semantic similarity failed", zap.Error(err))
		return types.ScoringComponent{
			Name:        ComponentSemantic,
			Score:       30.0,
			Weight:      s.weights.SemanticSimilarity,
			Confidence:  0.1,
			Evidence:    []string{fmt.Sprintf("Error in semantic analysis: %s", err)},
			Methodology: "Semantic similarity (failed)",
		}
	}

	score := report.OverallScore * 100

	// More consistent sub-scores mean a more trustworthy blend.
	confidence := math.Max(0.3, 1.0-variance(mapValues(report.ComponentScores)))

	evidence := []string{
		fmt.Sprintf("Overall semantic similarity: %.1f%%", score),
		fmt.Sprintf("Text similarity: %.1f%%", report.ComponentScores["text_similarity"]*100),
		fmt.Sprintf("Skill similarity: %.1f%%", report.ComponentScores["skill_match"]*100),
	}
	if embeddingScore, ok := report.ComponentScores["transformer_similarity"]; ok {
		evidence = append(evidence, fmt.Sprintf("Embedding similarity: %.1f%%", embeddingScore*100))
	}
	if report.EmbeddingDegraded {
		evidence = append(evidence, "Embedding provider unavailable, lexical signals only")
	}

	return types.ScoringComponent{
		Name:        ComponentSemantic,
		Score:       score,
		Weight:      s.weights.SemanticSimilarity,
		Confidence:  confidence,
		Evidence:    evidence,
		Methodology: "Embedding-based semantic similarity",
	}
}

// experienceMatching scores total years against the job's required and
// preferred years, with a relevance bonus when role descriptions mention the
// job's keywords.
func (s *Scorer) experienceMatching(resume types.ResumeData, job types.JobDescription) types.ScoringComponent {
	totalYears := resume.TotalYears()
	req := job.ExperienceRequirements

	requiredYears := req.MinYearsExperience
	preferredYears := req.PreferredYearsExperience
	if preferredYears == 0 {
		preferredYears = requiredYears + 2
	}

	var score, confidence float64
	switch {
	case requiredYears == 0:
		score = 70.0
		confidence = 0.4
	case totalYears >= preferredYears:
		score = 95.0
		confidence = 0.9
	case totalYears >= requiredYears:
		ratio := (totalYears - requiredYears) / math.Max(1, preferredYears-requiredYears)
		score = 70.0 + 25.0*ratio
		confidence = 0.8
	default:
		ratio := totalYears / math.Max(1, requiredYears)
		score = math.Max(10.0, 50.0*ratio)
		confidence = 0.7
	}

	var relevantYears float64
	for _, exp := range resume.WorkExperience {
		desc := strings.ToLower(exp.Description)
		for _, keyword := range req.RelevantKeywords {
			if strings.Contains(desc, strings.ToLower(keyword)) {
				relevantYears += exp.Years
				break
			}
		}
	}
	if len(req.RelevantKeywords) > 0 && relevantYears > 0 {
		bonus := math.Min(15.0, relevantYears/math.Max(1, totalYears)*15)
		score += bonus
		confidence = math.Min(0.95, confidence+0.1)
	}
	score = math.Min(100.0, score)

	level := "Below requirements"
	if totalYears >= requiredYears {
		level = "Above requirements"
	}

	return types.ScoringComponent{
		Name:       ComponentExperience,
		Score:      score,
		Weight:     s.weights.ExperienceMatching,
		Confidence: confidence,
		Evidence: []string{
			fmt.Sprintf("Total experience: %g years", totalYears),
			fmt.Sprintf("Required: %g years (preferred %g)", requiredYears, preferredYears),
			fmt.Sprintf("Relevant experience: %g years", relevantYears),
			fmt.Sprintf("Experience level: %s", level),
		},
		Methodology: "Years-based experience matching with relevance weighting",
	}
}

// skillCoverage scores direct, non-normalized set coverage of the job's
// required (0.8) and preferred (0.2) skills.
func (s *Scorer) skillCoverage(resume types.ResumeData, job types.JobDescription) types.ScoringComponent {
	resumeSkills := lowerSet(resume.Skills)
	requiredSkills := lowerSet(job.RequiredSkills)
	preferredSkills := lowerSet(job.PreferredSkills)

	if len(requiredSkills) == 0 && len(preferredSkills) == 0 {
		return types.ScoringComponent{
			Name:        ComponentSkillCoverage,
			Score:       60.0,
			Weight:      s.weights.SkillCoverage,
			Confidence:  0.3,
			Evidence:    []string{"No specific skills required"},
			Methodology: "Neutral scoring for undefined requirements",
		}
	}

	requiredMatches := intersectCount(resumeSkills, requiredSkills)
	preferredMatches := intersectCount(resumeSkills, preferredSkills)

	requiredCoverage := 100.0
	if len(requiredSkills) > 0 {
		requiredCoverage = float64(requiredMatches) / float64(len(requiredSkills)) * 100
	}
	preferredCoverage := 100.0
	if len(preferredSkills) > 0 {
		preferredCoverage = float64(preferredMatches) / float64(len(preferredSkills)) * 100
	}

	score := 0.8*requiredCoverage + 0.2*preferredCoverage
	confidence := math.Min(0.9, float64(len(resumeSkills)+requiredMatches+preferredMatches)/20)

	var matched []string
	for skill := range resumeSkills {
		if _, ok := requiredSkills[skill]; ok {
			matched = append(matched, skill)
			continue
		}
		if _, ok := preferredSkills[skill]; ok {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)

	return types.ScoringComponent{
		Name:       ComponentSkillCoverage,
		Score:      score,
		Weight:     s.weights.SkillCoverage,
		Confidence: confidence,
		Evidence: []string{
			fmt.Sprintf("Required skills coverage: %.1f%% (%d/%d)", requiredCoverage, requiredMatches, len(requiredSkills)),
			fmt.Sprintf("Preferred skills coverage: %.1f%% (%d/%d)", preferredCoverage, preferredMatches, len(preferredSkills)),
			fmt.Sprintf("Total resume skills: %d", len(resumeSkills)),
			fmt.Sprintf("Matched skills: %s", joinCapped(matched, 5)),
		},
		Methodology: "Direct skill matching with required/preferred weighting",
	}
}

// certificationMatching gives full credit when all required certifications
// are held (plus a small preferred bonus), partial credit for some, and only
// minor preferred-based credit otherwise.
func (s *Scorer) certificationMatching(resume types.ResumeData, job types.JobDescription) types.ScoringComponent {
	resumeCerts := lowerSet(resume.Certifications)
	requiredCerts := lowerSet(job.RequiredCertifications)
	preferredCerts := lowerSet(job.PreferredCertifications)

	if len(requiredCerts) == 0 && len(preferredCerts) == 0 {
		return types.ScoringComponent{
			Name:        ComponentCertification,
			Score:       70.0,
			Weight:      s.weights.CertificationMatching,
			Confidence:  0.4,
			Evidence:    []string{"No certifications required"},
			Methodology: "Neutral scoring for no requirements",
		}
	}

	requiredMatches := intersectCount(resumeCerts, requiredCerts)
	preferredMatches := intersectCount(resumeCerts, preferredCerts)
	requiredTotal := len(requiredCerts)
	preferredTotal := len(preferredCerts)

	var score float64
	if requiredTotal > 0 {
		requiredScore := float64(requiredMatches) / float64(requiredTotal) * 100
		switch {
		case requiredMatches == requiredTotal:
			score = 90.0 + math.Min(10.0, float64(preferredMatches)*2)
		case requiredMatches > 0:
			score = 50.0 + requiredScore*0.4
		default:
			score = math.Max(20.0, float64(preferredMatches)*10)
		}
	} else {
		score = math.Min(80.0, float64(preferredMatches)*20)
	}

	evidence := []string{
		fmt.Sprintf("Required certifications: %d/%d", requiredMatches, requiredTotal),
		fmt.Sprintf("Preferred certifications: %d/%d", preferredMatches, preferredTotal),
		fmt.Sprintf("Resume certifications: %d", len(resumeCerts)),
	}
	var matched []string
	for cert := range resumeCerts {
		if _, ok := requiredCerts[cert]; ok {
			matched = append(matched, cert)
			continue
		}
		if _, ok := preferredCerts[cert]; ok {
			matched = append(matched, cert)
		}
	}
	if len(matched) > 0 {
		sort.Strings(matched)
		evidence = append(evidence, fmt.Sprintf("Matched: %s", joinCapped(matched, 3)))
	}

	return types.ScoringComponent{
		Name:        ComponentCertification,
		Score:       score,
		Weight:      s.weights.CertificationMatching,
		Confidence:  0.8,
		Evidence:    evidence,
		Methodology: "Direct certification matching with required/preferred weighting",
	}
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func intersectCount(a, b map[string]struct{}) int {
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func joinCapped(items []string, n int) string {
	if len(items) == 0 {
		return "none"
	}
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:n], ", ") + "..."
}

func mapValues(m map[string]float64) []float64 {
	values := make([]float64, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
