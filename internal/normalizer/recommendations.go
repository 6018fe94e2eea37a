package normalizer

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-relevance/internal/types"
)

const (
	// maxSkillsPerSubcategory bounds how many representative skills are
	// surfaced from each missing subcategory.
	maxSkillsPerSubcategory = 3
	// maxRecommendations caps the total recommendation list.
	maxRecommendations = 15
)

// roleRequirements maps a target role to the skill categories it requires.
var roleRequirements = map[string][]string{
	"full_stack_developer": {"programming_languages", "web_technologies", "databases", "devops"},
	"data_scientist":       {"programming_languages", "data_science", "databases", "cloud_platforms"},
	"devops_engineer":      {"devops", "cloud_platforms", "databases", "programming_languages"},
	"mobile_developer":     {"mobile_development", "programming_languages", "databases"},
	"security_engineer":    {"security", "cloud_platforms", "devops", "programming_languages"},
}

// KnownRoles returns the roles the recommendation table covers, sorted.
func KnownRoles() []string {
	roles := make([]string, 0, len(roleRequirements))
	for role := range roleRequirements {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// SkillRecommendations analyzes the candidate's current skills against the
// category requirements of a target role and surfaces representative skills
// from the categories the candidate does not cover. Unknown roles yield an
// analysis with no recommendations.
func (n *Normalizer) SkillRecommendations(currentSkills []string, targetRole string) types.Recommendations {
	analysis := n.NormalizeSkillList(currentSkills)

	currentCategories := make(map[string]struct{}, len(analysis.CategoryDistribution))
	for category := range analysis.CategoryDistribution {
		currentCategories[category] = struct{}{}
	}

	role := strings.ToLower(strings.TrimSpace(targetRole))
	required, known := roleRequirements[role]

	var missing []string
	var recommended []string
	if known {
		for _, category := range required {
			if _, ok := currentCategories[category]; ok {
				continue
			}
			missing = append(missing, category)
			recommended = append(recommended, n.representativeSkills(category)...)
		}
		if len(recommended) > maxRecommendations {
			recommended = recommended[:maxRecommendations]
		}
	}

	var coverage float64
	if known && len(required) > 0 {
		coverage = float64(len(required)-len(missing)) / float64(len(required))
	}

	return types.Recommendations{
		TargetRole:        role,
		MissingCategories: missing,
		RecommendedSkills: recommended,
		SkillGap: types.SkillGapAnalysis{
			CoverageScore:    coverage,
			StrengthAreas:    sortedCategories(currentCategories),
			ImprovementAreas: missing,
		},
		CurrentSkillAnalysis: analysis,
	}
}

// representativeSkills returns up to maxSkillsPerSubcategory skills from each
// subcategory of the given category, in stable subcategory order.
func (n *Normalizer) representativeSkills(category string) []string {
	subcategories := n.taxonomy.Subcategories(category)
	if subcategories == nil {
		return nil
	}

	names := make([]string, 0, len(subcategories))
	for name := range subcategories {
		names = append(names, name)
	}
	sort.Strings(names)

	var skills []string
	for _, name := range names {
		entries := subcategories[name]
		limit := maxSkillsPerSubcategory
		if len(entries) < limit {
			limit = len(entries)
		}
		skills = append(skills, entries[:limit]...)
	}
	return skills
}

func sortedCategories(set map[string]struct{}) []string {
	categories := make([]string, 0, len(set))
	for c := range set {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
