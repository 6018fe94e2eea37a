package scorer

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-relevance/internal/types"
)

// Candidate pairs a resume with an identifying name for ranking.
type Candidate struct {
	Name   string           `json:"name"`
	Resume types.ResumeData `json:"resume"`
}

// RankedCandidate is one ranking entry, ordered best first.
type RankedCandidate struct {
	Name  string                `json:"name"`
	Rank  int                   `json:"rank"`
	Score *types.RelevanceScore `json:"score"`
}

// RankCandidates evaluates every candidate against the job and returns them
// sorted by overall score, best first. Candidates are independent, so they
// are scored concurrently with a bounded worker pool; workers <= 0 selects
// one worker per CPU. Results are deterministic because each evaluation is
// pure given the shared taxonomy. Ties break on candidate name for stable
// output.
func (s *Scorer) RankCandidates(ctx context.Context, candidates []Candidate, job types.JobDescription, workers int) ([]RankedCandidate, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ranked := make([]RankedCandidate, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, candidate := range candidates {
		g.Go(func() error {
			ranked[i] = RankedCandidate{
				Name:  candidate.Name,
				Score: s.Evaluate(gCtx, candidate.Resume, job),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score.OverallScore != ranked[j].Score.OverallScore {
			return ranked[i].Score.OverallScore > ranked[j].Score.OverallScore
		}
		return ranked[i].Name < ranked[j].Name
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}
