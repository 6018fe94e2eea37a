package semantic

import (
	"fmt"
	"sort"
	"strings"
)

// Match quality buckets for the overall similarity score.
const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityModerate  = "moderate"
	QualityPoor      = "poor"
)

const (
	strengthFloor  = 0.7
	weaknessCeil   = 0.5
	insightFloor   = 0.8
	goodQualityMin = 0.6
	moderateMin    = 0.4
)

// componentLabels maps report components to the labels used in strengths,
// weaknesses, and recommendations.
var componentLabels = []struct {
	label string
	score func(*Report) float64
}{
	{"Skills", func(r *Report) float64 { return r.SkillMatch.Score }},
	{"Categories", func(r *Report) float64 { return r.Category.Score }},
	{"Text", func(r *Report) float64 { return r.Text.Score }},
	{"Certifications", func(r *Report) float64 { return r.Certification.Score }},
	{"Experience", func(r *Report) float64 { return r.Experience.Score }},
}

var weaknessRecommendations = map[string]string{
	"Skills":         "Consider developing missing technical skills",
	"Certifications": "Pursue relevant certifications to strengthen profile",
	"Experience":     "Gain more relevant work experience or highlight transferable skills",
	"Categories":     "Expand skill set to cover more relevant technology categories",
}

// annotate fills the report's qualitative fields from its component scores.
func (e *Engine) annotate(r *Report) {
	switch {
	case r.OverallScore >= insightFloor:
		r.MatchQuality = QualityExcellent
	case r.OverallScore >= goodQualityMin:
		r.MatchQuality = QualityGood
	case r.OverallScore >= moderateMin:
		r.MatchQuality = QualityModerate
	default:
		r.MatchQuality = QualityPoor
	}

	r.Strengths = []string{}
	r.Weaknesses = []string{}
	r.Recommendations = []string{}
	for _, c := range componentLabels {
		score := c.score(r)
		if score >= strengthFloor {
			r.Strengths = append(r.Strengths, c.label)
		}
		if score < weaknessCeil {
			r.Weaknesses = append(r.Weaknesses, c.label)
			if rec, ok := weaknessRecommendations[c.label]; ok {
				r.Recommendations = append(r.Recommendations, rec)
			}
		}
	}
	sort.Strings(r.Strengths)
	sort.Strings(r.Weaknesses)

	r.KeyInsights = keyInsights(r)
}

// keyInsights produces short templated observations about the strongest and
// weakest signals.
func keyInsights(r *Report) []string {
	insights := []string{}

	if r.SkillMatch.Score >= insightFloor {
		insights = append(insights,
			fmt.Sprintf("Strong skill match with %d relevant skills", len(r.SkillMatch.MatchedSkills)))
	} else if len(r.SkillMatch.MissingSkills) > 0 {
		insights = append(insights,
			fmt.Sprintf("Missing %d key skills: %s",
				len(r.SkillMatch.MissingSkills),
				strings.Join(firstN(r.SkillMatch.MissingSkills, 3), ", ")))
	}

	if r.Certification.Score >= insightFloor {
		insights = append(insights, "Certification requirements well met")
	} else if len(r.Certification.MissingCertifications) > 0 {
		insights = append(insights,
			fmt.Sprintf("Missing certifications: %s",
				strings.Join(firstN(r.Certification.MissingCertifications, 2), ", ")))
	}

	if r.Experience.ExperienceGap {
		insights = append(insights,
			fmt.Sprintf("Experience gap: %.1f relevant years", r.Experience.RelevantYears))
	} else if r.Experience.Score >= insightFloor {
		insights = append(insights, "Experience level well matched to requirements")
	}

	return insights
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
