package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns a deterministic vector per text and counts backend
// calls so tests can assert on cache behavior.
type fakeProvider struct {
	calls      int
	textsSeen  []string
	batchSizes []int
}

func (f *fakeProvider) Model() string { return "fake-model" }

func (f *fakeProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := f.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (f *fakeProvider) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	f.calls++
	f.batchSizes = append(f.batchSizes, len(texts))
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		// Distinct non-normalized vector derived from text length.
		vectors[i] = []float64{float64(len(text)), 1, 0}
		f.textsSeen = append(f.textsSeen, text)
	}
	return vectors, nil
}

func newTestCached(t *testing.T, backend Provider, batchSize int) *CachedProvider {
	t.Helper()
	cache, err := NewCache(CacheConfig{Dir: t.TempDir()}, nil)
	require.NoError(t, err)
	return NewCachedProvider(backend, cache, batchSize, nil)
}

func TestCachedProvider_SecondCallHitsCache(t *testing.T) {
	backend := &fakeProvider{}
	cached := newTestCached(t, backend, 0)
	ctx := context.Background()

	first, err := cached.Embed(ctx, "hello world")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.calls)

	second, err := cached.Embed(ctx, "hello world")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.calls, "repeat encode must not reach the backend")
	assert.Equal(t, first, second)
}

func TestCachedProvider_VectorsAreL2Normalized(t *testing.T) {
	backend := &fakeProvider{}
	cached := newTestCached(t, backend, 0)

	vec, err := cached.Embed(context.Background(), "hello")
	require.NoError(t, err)

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestCachedProvider_BatchChunking(t *testing.T) {
	backend := &fakeProvider{}
	cached := newTestCached(t, backend, 2)

	texts := []string{"a", "bb", "ccc", "dddd", "eeeee"}
	vectors, err := cached.EmbedBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vectors, 5)

	assert.Equal(t, []int{2, 2, 1}, backend.batchSizes)
}

func TestCachedProvider_MixedHitsPreserveOrder(t *testing.T) {
	backend := &fakeProvider{}
	cached := newTestCached(t, backend, 0)
	ctx := context.Background()

	warm, err := cached.Embed(ctx, "bb")
	require.NoError(t, err)

	vectors, err := cached.EmbedBatch(ctx, []string{"a", "bb", "ccc"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	assert.Equal(t, warm, vectors[1])
	assert.Equal(t, []string{"bb", "a", "ccc"}, backend.textsSeen)
}

func TestCachedProvider_AllCached(t *testing.T) {
	backend := &fakeProvider{}
	cached := newTestCached(t, backend, 0)
	ctx := context.Background()

	_, err := cached.EmbedBatch(ctx, []string{"x", "y"})
	require.NoError(t, err)
	callsAfterWarmup := backend.calls

	_, err = cached.EmbedBatch(ctx, []string{"y", "x"})
	require.NoError(t, err)
	assert.Equal(t, callsAfterWarmup, backend.calls)
}

func TestDisabled_SignalsUnavailable(t *testing.T) {
	var d Disabled

	_, err := d.Embed(context.Background(), "text")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = d.EmbedBatch(context.Background(), []string{"text"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
