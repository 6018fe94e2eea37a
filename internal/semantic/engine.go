package semantic

import (
	"context"
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-relevance/internal/embedding"
	"github.com/jonathan/resume-relevance/internal/normalizer"
	"github.com/jonathan/resume-relevance/internal/types"
)

// Weights blends the sub-similarities into the overall score. Transformer
// carries the embedding-based text signal and is zero when no embedding
// provider is configured.
type Weights struct {
	SkillMatch          float64 `json:"skill_match"`
	CategorySimilarity  float64 `json:"category_similarity"`
	TextSimilarity      float64 `json:"text_similarity"`
	TransformerMatch    float64 `json:"transformer_similarity"`
	CertificationMatch  float64 `json:"certification_match"`
	ExperienceRelevance float64 `json:"experience_relevance"`
}

// DefaultWeights returns the blend weights. Embedding-backed engines shift
// weight from lexical signals onto the embedding similarity.
func DefaultWeights(withEmbeddings bool) Weights {
	if withEmbeddings {
		return Weights{
			SkillMatch:          0.25,
			CategorySimilarity:  0.15,
			TextSimilarity:      0.15,
			TransformerMatch:    0.25,
			CertificationMatch:  0.10,
			ExperienceRelevance: 0.10,
		}
	}
	return Weights{
		SkillMatch:          0.35,
		CategorySimilarity:  0.25,
		TextSimilarity:      0.20,
		CertificationMatch:  0.10,
		ExperienceRelevance: 0.10,
	}
}

const (
	skillConfidenceFloor = 0.6
	certConfidenceFloor  = 0.7
	relevanceThreshold   = 0.3
	tfidfBlendWeight     = 0.3
	embeddingBlendWeight = 0.7
)

// seniorityBands maps a required seniority level to its expected range of
// total years of experience.
var seniorityBands = map[string][2]float64{
	"entry":     {0, 2},
	"junior":    {1, 3},
	"mid":       {3, 7},
	"senior":    {5, 10},
	"lead":      {7, 15},
	"principal": {10, 20},
}

// SkillMatchDetail breaks down the normalized-skill comparison.
type SkillMatchDetail struct {
	Score             float64  `json:"score"`
	JaccardSimilarity float64  `json:"jaccard_similarity"`
	CoverageScore     float64  `json:"coverage_score"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	AdditionalSkills  []string `json:"additional_skills"`
}

// CategoryDetail breaks down the category-level comparison.
type CategoryDetail struct {
	Score            float64            `json:"score"`
	CategoryOverlap  map[string]float64 `json:"category_overlap"`
	CommonCategories []string           `json:"common_categories"`
}

// TextDetail breaks down the text comparison across both signals.
type TextDetail struct {
	Score               float64      `json:"score"`
	TFIDFSimilarity     float64      `json:"tfidf_similarity"`
	EmbeddingSimilarity float64      `json:"embedding_similarity"`
	EmbeddingUsed       bool         `json:"embedding_used"`
	TopCommonTerms      []TermWeight `json:"top_common_terms,omitempty"`
}

// CertificationDetail breaks down the certification comparison.
type CertificationDetail struct {
	Score                    float64  `json:"score"`
	MatchedCertifications    []string `json:"matched_certifications"`
	MissingCertifications    []string `json:"missing_certifications"`
	AdditionalCertifications []string `json:"additional_certifications"`
}

// RelevantRole is one resume role that cleared the relevance threshold.
type RelevantRole struct {
	Title          string  `json:"title"`
	Years          float64 `json:"years"`
	RelevanceScore float64 `json:"relevance_score"`
}

// ExperienceDetail breaks down the experience comparison.
type ExperienceDetail struct {
	Score               float64        `json:"score"`
	TotalYears          float64        `json:"total_years_experience"`
	RelevantYears       float64        `json:"relevant_years_experience"`
	YearsRequirementMet bool           `json:"years_requirement_met"`
	SeniorityMatch      float64        `json:"seniority_match"`
	RelevantRoles       []RelevantRole `json:"relevant_roles"`
	ExperienceGap       bool           `json:"experience_gap"`
}

// Report is the full output of a comprehensive similarity run. Scores are in
// [0, 1].
type Report struct {
	OverallScore      float64             `json:"overall_similarity_score"`
	ComponentScores   map[string]float64  `json:"component_scores"`
	SkillMatch        SkillMatchDetail    `json:"skill_matching_details"`
	Category          CategoryDetail      `json:"category_analysis"`
	Text              TextDetail          `json:"text_analysis"`
	Certification     CertificationDetail `json:"certification_analysis"`
	Experience        ExperienceDetail    `json:"experience_analysis"`
	MatchQuality      string              `json:"match_quality"`
	Strengths         []string            `json:"strengths"`
	Weaknesses        []string            `json:"weaknesses"`
	KeyInsights       []string            `json:"key_insights"`
	Recommendations   []string            `json:"recommendations"`
	EmbeddingDegraded bool                `json:"embedding_degraded"`
}

// Engine orchestrates the five sub-similarities for a resume/job pair.
type Engine struct {
	normalizer *normalizer.Normalizer
	similarity *embedding.Similarity
	weights    Weights
	logger     *zap.Logger
}

// NewEngine builds an Engine. similarity may be nil to run without an
// embedding provider; weights default per provider availability when zero.
func NewEngine(n *normalizer.Normalizer, similarity *embedding.Similarity, weights Weights, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if weights == (Weights{}) {
		weights = DefaultWeights(similarity != nil)
	}
	return &Engine{
		normalizer: n,
		similarity: similarity,
		weights:    weights,
		logger:     logger,
	}
}

// ComprehensiveSimilarity computes all sub-similarities and their weighted
// blend. When the embedding provider reports itself unavailable mid-call, the
// engine degrades to lexical-only weights and flags the report instead of
// failing.
func (e *Engine) ComprehensiveSimilarity(ctx context.Context, resume types.ResumeData, job types.JobDescription) (*Report, error) {
	jobSkills := append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...)
	jobCerts := append(append([]string{}, job.RequiredCertifications...), job.PreferredCertifications...)

	skill := e.skillSimilarity(resume.Skills, jobSkills)
	category := e.categorySimilarity(resume.Skills, jobSkills)
	text, degraded := e.textSimilarity(ctx, resume.FullText, job.Description)
	cert := e.certificationSimilarity(resume.Certifications, jobCerts)
	experience := e.experienceRelevance(resume.WorkExperience, job.ExperienceRequirements)

	weights := e.weights
	if degraded {
		weights = DefaultWeights(false)
		e.logger.Warn("embedding provider unavailable, degrading to lexical similarity")
	}

	overall := skill.Score*weights.SkillMatch +
		category.Score*weights.CategorySimilarity +
		text.Score*weights.TextSimilarity +
		cert.Score*weights.CertificationMatch +
		experience.Score*weights.ExperienceRelevance
	if text.EmbeddingUsed {
		overall += text.EmbeddingSimilarity * weights.TransformerMatch
	}
	overall = clamp01(overall)

	report := &Report{
		OverallScore: overall,
		ComponentScores: map[string]float64{
			"skill_match":          skill.Score,
			"category_similarity":  category.Score,
			"text_similarity":      text.Score,
			"certification_match":  cert.Score,
			"experience_relevance": experience.Score,
		},
		SkillMatch:        skill,
		Category:          category,
		Text:              text,
		Certification:     cert,
		Experience:        experience,
		EmbeddingDegraded: degraded,
	}
	if text.EmbeddingUsed {
		report.ComponentScores["transformer_similarity"] = text.EmbeddingSimilarity
	}

	e.annotate(report)
	return report, nil
}

// skillSimilarity compares normalized skill sets: 0.6 Jaccard + 0.4 coverage
// of the job's requirements. Low-confidence normalizations are excluded.
func (e *Engine) skillSimilarity(resumeSkills, jobSkills []string) SkillMatchDetail {
	detail := SkillMatchDetail{
		MatchedSkills:    []string{},
		MissingSkills:    []string{},
		AdditionalSkills: []string{},
	}
	if len(resumeSkills) == 0 || len(jobSkills) == 0 {
		detail.MissingSkills = append(detail.MissingSkills, jobSkills...)
		sort.Strings(detail.MissingSkills)
		return detail
	}

	resumeSet := e.confidentSkillSet(resumeSkills)
	jobSet := e.confidentSkillSet(jobSkills)

	var intersection, union int
	for s := range resumeSet {
		if _, ok := jobSet[s]; ok {
			intersection++
			detail.MatchedSkills = append(detail.MatchedSkills, s)
		} else {
			detail.AdditionalSkills = append(detail.AdditionalSkills, s)
		}
	}
	for s := range jobSet {
		if _, ok := resumeSet[s]; !ok {
			detail.MissingSkills = append(detail.MissingSkills, s)
		}
	}
	union = len(resumeSet) + len(jobSet) - intersection

	if union > 0 {
		detail.JaccardSimilarity = float64(intersection) / float64(union)
	}
	if len(jobSet) > 0 {
		detail.CoverageScore = float64(intersection) / float64(len(jobSet))
	}
	detail.Score = detail.JaccardSimilarity*0.6 + detail.CoverageScore*0.4

	sort.Strings(detail.MatchedSkills)
	sort.Strings(detail.MissingSkills)
	sort.Strings(detail.AdditionalSkills)
	return detail
}

func (e *Engine) confidentSkillSet(skills []string) map[string]struct{} {
	analysis := e.normalizer.NormalizeSkillList(skills)
	set := make(map[string]struct{}, len(analysis.NormalizedSkills))
	for _, s := range analysis.NormalizedSkills {
		if s.Normalized != "" && s.Confidence > skillConfidenceFloor {
			set[s.Normalized] = struct{}{}
		}
	}
	return set
}

// categorySimilarity compares the category distributions of both sides:
// min/max count ratio per category, averaged over the union of categories.
func (e *Engine) categorySimilarity(resumeSkills, jobSkills []string) CategoryDetail {
	detail := CategoryDetail{
		CategoryOverlap:  map[string]float64{},
		CommonCategories: []string{},
	}
	if len(resumeSkills) == 0 || len(jobSkills) == 0 {
		return detail
	}

	resumeDist := e.normalizer.NormalizeSkillList(resumeSkills).CategoryDistribution
	jobDist := e.normalizer.NormalizeSkillList(jobSkills).CategoryDistribution

	all := make(map[string]struct{}, len(resumeDist)+len(jobDist))
	for c := range resumeDist {
		all[c] = struct{}{}
	}
	for c := range jobDist {
		all[c] = struct{}{}
	}
	if len(all) == 0 {
		return detail
	}

	var total float64
	for c := range all {
		rc := float64(resumeDist[c])
		jc := float64(jobDist[c])
		sim := math.Min(rc, jc) / math.Max(math.Max(rc, jc), 1)
		detail.CategoryOverlap[c] = sim
		total += sim
		if resumeDist[c] > 0 && jobDist[c] > 0 {
			detail.CommonCategories = append(detail.CommonCategories, c)
		}
	}
	detail.Score = total / float64(len(all))
	sort.Strings(detail.CommonCategories)
	return detail
}

// textSimilarity computes TF-IDF similarity and, when a provider is wired,
// blends in embedding similarity 0.3/0.7. Returns degraded=true when the
// provider reports itself unavailable.
func (e *Engine) textSimilarity(ctx context.Context, resumeText, jobText string) (TextDetail, bool) {
	var detail TextDetail
	if resumeText == "" || jobText == "" {
		return detail, false
	}

	detail.TFIDFSimilarity, detail.TopCommonTerms = TFIDFSimilarity(resumeText, jobText)

	degraded := false
	if e.similarity != nil {
		sim, err := e.similarity.TextSimilarity(ctx, resumeText, jobText)
		switch {
		case err == nil:
			detail.EmbeddingSimilarity = sim
			detail.EmbeddingUsed = true
		case errors.Is(err, embedding.ErrUnavailable):
			degraded = true
		default:
			e.logger.Warn("embedding text similarity failed", zap.Error(err))
			degraded = true
		}
	}

	if detail.EmbeddingUsed {
		detail.Score = clamp01(tfidfBlendWeight*detail.TFIDFSimilarity + embeddingBlendWeight*detail.EmbeddingSimilarity)
	} else {
		detail.Score = clamp01(detail.TFIDFSimilarity)
	}
	return detail, degraded
}

// certificationSimilarity is the matched fraction of required certifications
// after normalization; a job with no certification requirements scores 1.0.
func (e *Engine) certificationSimilarity(resumeCerts, jobCerts []string) CertificationDetail {
	detail := CertificationDetail{
		MatchedCertifications:    []string{},
		MissingCertifications:    []string{},
		AdditionalCertifications: []string{},
	}
	if len(jobCerts) == 0 {
		detail.Score = 1.0
		return detail
	}
	if len(resumeCerts) == 0 {
		detail.MissingCertifications = append(detail.MissingCertifications, jobCerts...)
		sort.Strings(detail.MissingCertifications)
		return detail
	}

	resumeSet := e.confidentCertSet(resumeCerts)
	jobSet := e.confidentCertSet(jobCerts)

	matched := 0
	for c := range jobSet {
		if _, ok := resumeSet[c]; ok {
			matched++
			detail.MatchedCertifications = append(detail.MatchedCertifications, c)
		} else {
			detail.MissingCertifications = append(detail.MissingCertifications, c)
		}
	}
	for c := range resumeSet {
		if _, ok := jobSet[c]; !ok {
			detail.AdditionalCertifications = append(detail.AdditionalCertifications, c)
		}
	}
	if len(jobSet) > 0 {
		detail.Score = float64(matched) / float64(len(jobSet))
	}

	sort.Strings(detail.MatchedCertifications)
	sort.Strings(detail.MissingCertifications)
	sort.Strings(detail.AdditionalCertifications)
	return detail
}

func (e *Engine) confidentCertSet(certs []string) map[string]struct{} {
	analysis := e.normalizer.NormalizeCertificationList(certs)
	set := make(map[string]struct{}, len(analysis.NormalizedCertifications))
	for _, c := range analysis.NormalizedCertifications {
		if c.Normalized != "" && c.Confidence > certConfidenceFloor {
			set[c.Normalized] = struct{}{}
		}
	}
	return set
}

var wordPattern = regexp.MustCompile(`\w+`)

// experienceRelevance scores 0.7 years coverage + 0.3 seniority band match.
// A role counts toward relevant years when its title and description overlap
// the job's relevant keywords above the threshold.
func (e *Engine) experienceRelevance(experience []types.Experience, req types.ExperienceRequirements) ExperienceDetail {
	detail := ExperienceDetail{RelevantRoles: []RelevantRole{}}
	if len(experience) == 0 {
		detail.ExperienceGap = true
		return detail
	}

	var totalYears, relevantYears float64
	for _, exp := range experience {
		totalYears += exp.Years
		text := strings.ToLower(exp.Title + " " + exp.Description)
		relevance := keywordOverlap(text, req.RelevantKeywords)
		if relevance > relevanceThreshold {
			relevantYears += exp.Years
			detail.RelevantRoles = append(detail.RelevantRoles, RelevantRole{
				Title:          exp.Title,
				Years:          exp.Years,
				RelevanceScore: relevance,
			})
		}
	}

	yearsScore := math.Min(relevantYears/math.Max(req.MinYearsExperience, 1), 1.0)
	seniorityScore := seniorityMatch(totalYears, req.SeniorityLevel)

	detail.Score = yearsScore*0.7 + seniorityScore*0.3
	detail.TotalYears = totalYears
	detail.RelevantYears = relevantYears
	detail.YearsRequirementMet = relevantYears >= req.MinYearsExperience
	detail.SeniorityMatch = seniorityScore
	detail.ExperienceGap = relevantYears < req.MinYearsExperience
	return detail
}

// keywordOverlap is the fraction of job keywords appearing as words in the
// text. No keywords yields a neutral 0.5.
func keywordOverlap(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.5
	}
	words := make(map[string]struct{})
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		words[w] = struct{}{}
	}
	matched := 0
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(k)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := words[k]; ok {
			matched++
		}
	}
	return math.Min(float64(matched)/float64(len(seen)), 1.0)
}

// seniorityMatch scores total years against the band for the required level:
// 1.0 inside the band, proportional under it, and a mild penalty floored at
// 0.7 over it. Unknown levels are neutral.
func seniorityMatch(totalYears float64, level string) float64 {
	band, ok := seniorityBands[strings.ToLower(level)]
	if !ok {
		return 0.5
	}
	min, max := band[0], band[1]
	switch {
	case totalYears >= min && totalYears <= max:
		return 1.0
	case totalYears < min:
		if min > 0 {
			return totalYears / min
		}
		return 0.0
	default:
		return math.Max(0.7, 1.0-(totalYears-max)/10)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
