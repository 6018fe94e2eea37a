package embedding

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// DefaultBatchSize bounds how many texts go to the backend in one call.
const DefaultBatchSize = 32

// CachedProvider wraps a Provider with the two-tier Cache. Every fresh vector
// is L2-normalized before caching so cosine similarity reduces to a dot
// product downstream.
type CachedProvider struct {
	backend   Provider
	cache     *Cache
	batchSize int
	logger    *zap.Logger
}

// NewCachedProvider wraps backend with cache. batchSize <= 0 selects the
// default.
func NewCachedProvider(backend Provider, cache *Cache, batchSize int, logger *zap.Logger) *CachedProvider {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProvider{
		backend:   backend,
		cache:     cache,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Model reports the wrapped backend's model identifier.
func (p *CachedProvider) Model() string {
	return p.backend.Model()
}

// Embed returns the embedding for a single text, serving from cache when
// possible.
func (p *CachedProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch returns embeddings for texts in their input order. Cached texts
// never reach the backend; the remainder is chunked to the batch size. A
// backend failure fails the whole call — partial results are never returned.
func (p *CachedProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	results := make([][]float64, len(texts))

	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if vec, ok := p.cache.Get(p.Model(), text); ok {
			results[i] = vec
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return results, nil
	}
	p.logger.Debug("embedding cache misses",
		zap.Int("total", len(texts)),
		zap.Int("misses", len(missing)))

	for start := 0; start < len(missing); start += p.batchSize {
		end := start + p.batchSize
		if end > len(missing) {
			end = len(missing)
		}
		chunk := missing[start:end]

		vectors, err := p.backend.EmbedBatch(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("embed batch of %d texts: %w", len(chunk), err)
		}
		if len(vectors) != len(chunk) {
			return nil, fmt.Errorf("backend returned %d vectors for %d texts", len(vectors), len(chunk))
		}

		for j, vec := range vectors {
			normalized := l2Normalize(vec)
			p.cache.Put(p.Model(), chunk[j], normalized)
			results[missingIdx[start+j]] = normalized
		}
	}

	return results, nil
}

// l2Normalize scales v to unit length. Zero vectors pass through unchanged.
func l2Normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}
