// Package normalizer maps raw skill and certification strings onto the
// curated taxonomy using exact lookups and fuzzy matching.
package normalizer

import (
	"regexp"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"

	"github.com/jonathan/resume-relevance/internal/taxonomy"
	"github.com/jonathan/resume-relevance/internal/types"
)

// DefaultMinSimilarity is the default acceptance threshold for fuzzy matches.
const DefaultMinSimilarity = 0.7

// maxCandidates limits how many fuzzy candidates are considered per input.
const maxCandidates = 3

// Normalizer normalizes skills and certifications against a taxonomy.
// Safe for concurrent use: all state is immutable after construction.
type Normalizer struct {
	taxonomy      *taxonomy.Taxonomy
	minSimilarity float64
	logger        *zap.Logger
}

// New creates a Normalizer. minSimilarity <= 0 selects the default threshold;
// a nil logger is replaced with a no-op logger.
func New(tax *taxonomy.Taxonomy, minSimilarity float64, logger *zap.Logger) *Normalizer {
	if tax == nil {
		tax = taxonomy.New()
	}
	if minSimilarity <= 0 {
		minSimilarity = DefaultMinSimilarity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{
		taxonomy:      tax,
		minSimilarity: minSimilarity,
		logger:        logger,
	}
}

// Taxonomy returns the underlying taxonomy.
func (n *Normalizer) Taxonomy() *taxonomy.Taxonomy {
	return n.taxonomy
}

// NormalizeSkill normalizes a single raw skill string. Blank input produces a
// zero-confidence no-match result; this function never fails.
func (n *Normalizer) NormalizeSkill(raw string) types.NormalizedSkill {
	cleaned := cleanSkillText(raw)
	if cleaned == "" {
		return noMatch(raw, cleaned)
	}

	// Exact lookup before any fuzzy work.
	if canonical, ok := n.taxonomy.ReverseLookup(cleaned); ok {
		category, subcategory := n.taxonomy.FindSkillCategory(canonical)
		return types.NormalizedSkill{
			Original:    raw,
			Normalized:  canonical,
			Confidence:  1.0,
			Category:    category,
			Subcategory: subcategory,
			MatchType:   types.MatchExact,
		}
	}

	candidates := topMatches(cleaned, n.taxonomy.SkillSearchSpace(), func(a, b string) int {
		return fuzzy.TokenSortRatio(a, b)
	})
	if len(candidates) == 0 || candidates[0].score < n.minSimilarity {
		return noMatch(raw, cleaned)
	}

	best := candidates[0]
	canonical := best.name
	if mapped, ok := n.taxonomy.ReverseLookup(best.name); ok {
		canonical = mapped
	}
	category, subcategory := n.taxonomy.FindSkillCategory(canonical)

	return types.NormalizedSkill{
		Original:     raw,
		Normalized:   canonical,
		Confidence:   best.score,
		Category:     category,
		Subcategory:  subcategory,
		MatchType:    types.MatchFuzzy,
		Alternatives: alternatives(candidates[1:]),
	}
}

// NormalizeCertification normalizes a certification string. Certifications
// are matched with a token-set scorer, which tolerates extra qualifiers like
// "Associate" or "Certified" in either operand.
func (n *Normalizer) NormalizeCertification(raw string) types.NormalizedSkill {
	cleaned := cleanSkillText(raw)
	if cleaned == "" {
		return noMatch(raw, cleaned)
	}

	candidates := topMatches(cleaned, n.taxonomy.AllCertifications(), func(a, b string) int {
		return fuzzy.TokenSetRatio(a, b)
	})
	if len(candidates) == 0 || candidates[0].score < n.minSimilarity {
		return noMatch(raw, cleaned)
	}

	best := candidates[0]
	category, subcategory := n.taxonomy.FindCertificationCategory(best.name)

	return types.NormalizedSkill{
		Original:     raw,
		Normalized:   best.name,
		Confidence:   best.score,
		Category:     category,
		Subcategory:  subcategory,
		MatchType:    types.MatchFuzzy,
		Alternatives: alternatives(candidates[1:]),
	}
}

func noMatch(raw, cleaned string) types.NormalizedSkill {
	return types.NormalizedSkill{
		Original:    raw,
		Normalized:  cleaned, // keep the cleaned input for traceability
		Confidence:  0.0,
		Category:    "unknown",
		Subcategory: "unknown",
		MatchType:   types.MatchNone,
	}
}

type candidate struct {
	name  string
	score float64
}

// topMatches scores the input against every entry in the search space and
// returns the best candidates in descending score order. Ties break on name
// so results are deterministic.
func topMatches(input string, searchSpace []string, scorer func(string, string) int) []candidate {
	candidates := make([]candidate, 0, len(searchSpace))
	for _, entry := range searchSpace {
		score := scorer(input, entry)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, candidate{name: entry, score: float64(score) / 100.0})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

func alternatives(candidates []candidate) []types.Alternative {
	if len(candidates) == 0 {
		return nil
	}
	alts := make([]types.Alternative, 0, len(candidates))
	for _, c := range candidates {
		alts = append(alts, types.Alternative{Name: c.name, Confidence: c.score})
	}
	return alts
}

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	prefixRe       = regexp.MustCompile(`(?i)^(experience\s+with|knowledge\s+of|proficient\s+in|expert\s+in)\s+`)
	suffixRe       = regexp.MustCompile(`(?i)\s+(programming|language|framework|library|tool|platform|database)$`)
	versionRe      = regexp.MustCompile(`\s+v?\d+(\.\d+)*$`)
	parentheicalRe = regexp.MustCompile(`\([^)]*\)`)
)

// cleanSkillText strips qualifier prefixes, generic suffix nouns, trailing
// version numbers and parenthetical content before matching.
func cleanSkillText(text string) string {
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return ""
	}

	text = prefixRe.ReplaceAllString(text, "")
	text = suffixRe.ReplaceAllString(text, "")
	text = versionRe.ReplaceAllString(text, "")
	text = parentheicalRe.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}
