package types

// Match type values for NormalizedSkill.MatchType.
const (
	MatchExact = "exact"
	MatchFuzzy = "fuzzy"
	MatchNone  = "no_match"
)

// NormalizedSkill is the result of mapping one raw skill or certification
// string onto the taxonomy.
type NormalizedSkill struct {
	Original     string        `json:"original"`
	Normalized   string        `json:"normalized"`
	Confidence   float64       `json:"confidence"`
	Category     string        `json:"category"`
	Subcategory  string        `json:"subcategory"`
	MatchType    string        `json:"match_type"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// Alternative is a runner-up fuzzy match candidate.
type Alternative struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// SkillStatistics summarizes confidence across a normalized list.
type SkillStatistics struct {
	Total               int     `json:"total"`
	NormalizedCount     int     `json:"normalized_count"`
	AverageConfidence   float64 `json:"avg_confidence"`
	HighConfidenceCount int     `json:"high_confidence_count"`
	LowConfidenceCount  int     `json:"low_confidence_count"`
}

// SkillListAnalysis is the full result of normalizing a skill list.
// SkillVectors holds, per category, the confidence-weighted fraction of the
// input list that landed in that category. It is a soft category fingerprint,
// not a probability distribution.
type SkillListAnalysis struct {
	NormalizedSkills     []NormalizedSkill  `json:"normalized_skills"`
	Statistics           SkillStatistics    `json:"statistics"`
	CategoryDistribution map[string]int     `json:"category_distribution"`
	SkillVectors         map[string]float64 `json:"skill_vectors"`
}

// CertificationListAnalysis is the analogous result for certifications.
// Certifications carry no vector fingerprint.
type CertificationListAnalysis struct {
	NormalizedCertifications []NormalizedSkill `json:"normalized_certifications"`
	Statistics               SkillStatistics   `json:"statistics"`
	CategoryDistribution     map[string]int    `json:"category_distribution"`
}

// SkillSimilarity compares two skill lists after normalization.
type SkillSimilarity struct {
	JaccardSimilarity float64  `json:"jaccard_similarity"`
	CategoryOverlap   float64  `json:"category_overlap"`
	CommonSkills      []string `json:"common_skills"`
	UniqueToFirst     []string `json:"unique_to_first"`
	UniqueToSecond    []string `json:"unique_to_second"`
}

// SkillGapAnalysis summarizes category coverage against a target role.
type SkillGapAnalysis struct {
	CoverageScore    float64  `json:"coverage_score"`
	StrengthAreas    []string `json:"strength_areas"`
	ImprovementAreas []string `json:"improvement_areas"`
}

// Recommendations is the result of a role-targeted skill gap analysis.
type Recommendations struct {
	TargetRole           string            `json:"target_role"`
	MissingCategories    []string          `json:"missing_categories"`
	RecommendedSkills    []string          `json:"recommended_skills"`
	SkillGap             SkillGapAnalysis  `json:"skill_gap_analysis"`
	CurrentSkillAnalysis SkillListAnalysis `json:"current_skill_analysis"`
}
