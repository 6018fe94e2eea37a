// Package taxonomy provides the static skill and certification knowledge base
// used for normalization. The taxonomy is immutable: it is built once at
// construction and only read afterwards.
package taxonomy

import (
	"sort"
	"strings"
)

// Taxonomy holds categorized canonical skills, certification groups, a synonym
// table, and a flattened reverse mapping for O(1) exact lookups.
type Taxonomy struct {
	skillCategories       map[string]map[string][]string
	certificationMappings map[string]map[string][]string
	skillSynonyms         map[string][]string
	reverseMapping        map[string]string

	allSkills         []string
	allCertifications []string
	skillSearchSpace  []string
}

// New builds the taxonomy and its derived lookup structures.
func New() *Taxonomy {
	t := &Taxonomy{
		skillCategories:       buildSkillCategories(),
		certificationMappings: buildCertificationMappings(),
		skillSynonyms:         buildSkillSynonyms(),
	}

	t.reverseMapping = t.buildReverseMapping()
	t.allSkills = t.collectSkills()
	t.allCertifications = t.collectCertifications()

	// Fuzzy search space: every canonical skill plus every synonym-table key.
	// Sorted so candidate ordering is deterministic across runs.
	seen := make(map[string]struct{}, len(t.allSkills)+len(t.skillSynonyms))
	for _, s := range t.allSkills {
		seen[s] = struct{}{}
	}
	for canonical := range t.skillSynonyms {
		seen[canonical] = struct{}{}
	}
	t.skillSearchSpace = make([]string, 0, len(seen))
	for s := range seen {
		t.skillSearchSpace = append(t.skillSearchSpace, s)
	}
	sort.Strings(t.skillSearchSpace)

	return t
}

// ReverseLookup maps a lowercase skill or synonym spelling to its canonical
// form. The input is lowercased internally.
func (t *Taxonomy) ReverseLookup(s string) (string, bool) {
	canonical, ok := t.reverseMapping[strings.ToLower(s)]
	return canonical, ok
}

// AllSkills returns every canonical skill name, sorted.
func (t *Taxonomy) AllSkills() []string {
	return t.allSkills
}

// AllCertifications returns every canonical certification name, sorted.
func (t *Taxonomy) AllCertifications() []string {
	return t.allCertifications
}

// SkillSearchSpace returns the combined fuzzy-match search space of canonical
// skills and synonym-table keys, sorted.
func (t *Taxonomy) SkillSearchSpace() []string {
	return t.skillSearchSpace
}

// FindSkillCategory returns the category and subcategory containing the given
// canonical skill, or ("unknown", "unknown") when it is not in the taxonomy.
func (t *Taxonomy) FindSkillCategory(canonical string) (category, subcategory string) {
	return findIn(t.skillCategories, canonical)
}

// FindCertificationCategory is FindSkillCategory for certifications.
func (t *Taxonomy) FindCertificationCategory(canonical string) (category, subcategory string) {
	return findIn(t.certificationMappings, canonical)
}

// Categories returns the names of all skill categories, sorted.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.skillCategories))
	for name := range t.skillCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subcategories returns the subcategory→skills table for one category, or nil
// when the category does not exist. Callers must not mutate the result.
func (t *Taxonomy) Subcategories(category string) map[string][]string {
	return t.skillCategories[category]
}

func findIn(table map[string]map[string][]string, name string) (string, string) {
	for category, subcategories := range table {
		for subcategory, entries := range subcategories {
			for _, entry := range entries {
				if entry == name {
					return category, subcategory
				}
			}
		}
	}
	return "unknown", "unknown"
}

func (t *Taxonomy) buildReverseMapping() map[string]string {
	reverse := make(map[string]string)

	for _, subcategories := range t.skillCategories {
		for _, skills := range subcategories {
			for _, skill := range skills {
				reverse[strings.ToLower(skill)] = skill
			}
		}
	}

	for canonical, synonyms := range t.skillSynonyms {
		for _, synonym := range synonyms {
			reverse[strings.ToLower(synonym)] = canonical
		}
	}

	return reverse
}

func (t *Taxonomy) collectSkills() []string {
	seen := make(map[string]struct{})
	for _, subcategories := range t.skillCategories {
		for _, skills := range subcategories {
			for _, skill := range skills {
				seen[skill] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(seen))
	for skill := range seen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

func (t *Taxonomy) collectCertifications() []string {
	seen := make(map[string]struct{})
	for _, subcategories := range t.certificationMappings {
		for _, certs := range subcategories {
			for _, cert := range certs {
				seen[cert] = struct{}{}
			}
		}
	}

	certs := make([]string, 0, len(seen))
	for cert := range seen {
		certs = append(certs, cert)
	}
	sort.Strings(certs)
	return certs
}
