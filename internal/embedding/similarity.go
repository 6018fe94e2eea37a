package embedding

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultMatchThreshold is the minimum cosine similarity for two skills to
// count as a semantic match.
const DefaultMatchThreshold = 0.7

// CosineSimilarity returns the cosine similarity of two vectors, clamped to
// [0, 1]. Mismatched lengths and zero vectors yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := floats.Dot(a, b) / (normA * normB)
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// SkillGap describes a wanted skill with no sufficient match, along with the
// closest candidate found.
type SkillGap struct {
	Skill        string  `json:"skill"`
	ClosestMatch string  `json:"closest_match,omitempty"`
	Similarity   float64 `json:"similarity"`
}

// SkillSetMatch is the result of comparing a candidate skill set against a
// wanted skill set in embedding space.
type SkillSetMatch struct {
	Score   float64    `json:"score"`
	Matched []string   `json:"matched"`
	Missing []string   `json:"missing"`
	Gaps    []SkillGap `json:"gaps"`
}

// Similarity computes embedding-based similarities through a provider.
type Similarity struct {
	provider Provider
}

// NewSimilarity builds a Similarity over the given provider.
func NewSimilarity(provider Provider) *Similarity {
	return &Similarity{provider: provider}
}

// TextSimilarity embeds both texts and returns their cosine similarity.
func (s *Similarity) TextSimilarity(ctx context.Context, a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, nil
	}
	vectors, err := s.provider.EmbedBatch(ctx, []string{a, b})
	if err != nil {
		return 0, fmt.Errorf("embed texts: %w", err)
	}
	return CosineSimilarity(vectors[0], vectors[1]), nil
}

// SkillSetSimilarity matches each wanted skill against the candidate's skills
// in embedding space. A wanted skill is matched when its best cosine
// similarity meets threshold; the score is the fraction of wanted skills
// matched. threshold <= 0 selects the default.
func (s *Similarity) SkillSetSimilarity(ctx context.Context, have, want []string, threshold float64) (*SkillSetMatch, error) {
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}
	result := &SkillSetMatch{Matched: []string{}, Missing: []string{}, Gaps: []SkillGap{}}
	if len(want) == 0 {
		result.Score = 1.0
		return result, nil
	}
	if len(have) == 0 {
		result.Missing = append(result.Missing, want...)
		for _, w := range want {
			result.Gaps = append(result.Gaps, SkillGap{Skill: w})
		}
		return result, nil
	}

	all := make([]string, 0, len(have)+len(want))
	all = append(all, have...)
	all = append(all, want...)
	vectors, err := s.provider.EmbedBatch(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("embed skill sets: %w", err)
	}
	haveVecs := vectors[:len(have)]
	wantVecs := vectors[len(have):]

	matched := 0
	for i, w := range want {
		best := 0.0
		bestSkill := ""
		for j, h := range have {
			if sim := CosineSimilarity(wantVecs[i], haveVecs[j]); sim > best {
				best = sim
				bestSkill = h
			}
		}
		if best >= threshold {
			matched++
			result.Matched = append(result.Matched, w)
		} else {
			result.Missing = append(result.Missing, w)
			result.Gaps = append(result.Gaps, SkillGap{
				Skill:        w,
				ClosestMatch: bestSkill,
				Similarity:   best,
			})
		}
	}

	sort.Strings(result.Matched)
	sort.Strings(result.Missing)
	sort.Slice(result.Gaps, func(i, j int) bool { return result.Gaps[i].Skill < result.Gaps[j].Skill })
	result.Score = float64(matched) / float64(len(want))
	return result, nil
}
