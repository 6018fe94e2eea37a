package normalizer

import (
	"sort"

	"github.com/jonathan/resume-relevance/internal/types"
)

// CalculateSkillSimilarity normalizes both skill lists and compares the
// resulting canonical sets. JaccardSimilarity is over normalized skill names;
// CategoryOverlap is Jaccard over the categories each side touches.
func (n *Normalizer) CalculateSkillSimilarity(skillsA, skillsB []string) types.SkillSimilarity {
	analysisA := n.NormalizeSkillList(skillsA)
	analysisB := n.NormalizeSkillList(skillsB)

	setA := normalizedSet(analysisA.NormalizedSkills)
	setB := normalizedSet(analysisB.NormalizedSkills)

	intersection := make(map[string]struct{})
	union := make(map[string]struct{})
	for s := range setA {
		union[s] = struct{}{}
		if _, ok := setB[s]; ok {
			intersection[s] = struct{}{}
		}
	}
	for s := range setB {
		union[s] = struct{}{}
	}

	var jaccard float64
	if len(union) > 0 {
		jaccard = float64(len(intersection)) / float64(len(union))
	}

	return types.SkillSimilarity{
		JaccardSimilarity: jaccard,
		CategoryOverlap:   categoryJaccard(analysisA.CategoryDistribution, analysisB.CategoryDistribution),
		CommonSkills:      sortedKeys(intersection),
		UniqueToFirst:     sortedDifference(setA, setB),
		UniqueToSecond:    sortedDifference(setB, setA),
	}
}

// normalizedSet collects the normalized names of all skills. No-match entries
// keep their cleaned input as the normalized name, so two identical lists
// always produce identical sets even when nothing maps onto the taxonomy.
func normalizedSet(skills []types.NormalizedSkill) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if s.Normalized == "" {
			continue
		}
		set[s.Normalized] = struct{}{}
	}
	return set
}

func categoryJaccard(distA, distB map[string]int) float64 {
	union := make(map[string]struct{})
	common := 0
	for c := range distA {
		union[c] = struct{}{}
		if _, ok := distB[c]; ok {
			common++
		}
	}
	for c := range distB {
		union[c] = struct{}{}
	}

	if len(union) == 0 {
		return 0.0
	}
	return float64(common) / float64(len(union))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDifference(a, b map[string]struct{}) []string {
	diff := make([]string, 0)
	for s := range a {
		if _, ok := b[s]; !ok {
			diff = append(diff, s)
		}
	}
	sort.Strings(diff)
	return diff
}
