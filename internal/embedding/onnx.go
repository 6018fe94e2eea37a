package embedding

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/options"
	"github.com/knights-analytics/hugot/pipelines"
)

// DefaultONNXModel is the sentence-embedding model used when no other is
// configured. Matched to the hosted default so cache keys line up across
// backends of the same model family.
const DefaultONNXModel = "sentence-transformers/all-MiniLM-L6-v2"

// ONNXProvider implements Provider with a local ONNX sentence-embedding
// pipeline. The model is downloaded and loaded lazily via EnsureModel; until
// then every call reports ErrUnavailable.
type ONNXProvider struct {
	modelRepo string
	cacheDir  string
	modelPath string

	mu       sync.RWMutex
	session  *hugot.Session
	pipeline *pipelines.FeatureExtractionPipeline
	loaded   bool
}

// ONNXConfig configures a local ONNX embedding provider.
type ONNXConfig struct {
	// ModelRepo is the HuggingFace repository of the embedding model.
	ModelRepo string
	// CacheDir is where downloaded models are stored.
	CacheDir string
}

// NewONNX creates a local ONNX provider. The model is not loaded yet.
func NewONNX(cfg ONNXConfig) (*ONNXProvider, error) {
	if cfg.ModelRepo == "" {
		cfg.ModelRepo = DefaultONNXModel
	}
	if cfg.CacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		cfg.CacheDir = filepath.Join(home, ".resume-relevance", "models")
	}

	if err := os.MkdirAll(cfg.CacheDir, 0755); err != nil {
		return nil, fmt.Errorf("create model cache dir: %w", err)
	}

	return &ONNXProvider{
		modelRepo: cfg.ModelRepo,
		cacheDir:  cfg.CacheDir,
		modelPath: filepath.Join(cfg.CacheDir, filepath.Base(cfg.ModelRepo)),
	}, nil
}

// Model implements Provider.
func (p *ONNXProvider) Model() string {
	return p.modelRepo
}

// EnsureModel downloads the model if missing and loads the inference
// pipeline. Safe to call repeatedly; only the first call does work.
func (p *ONNXProvider) EnsureModel(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return nil
	}

	if _, err := os.Stat(p.modelPath); os.IsNotExist(err) {
		downloadOpts := hugot.NewDownloadOptions()
		modelPath, err := hugot.DownloadModel(p.modelRepo, p.cacheDir, downloadOpts)
		if err != nil {
			return fmt.Errorf("download model: %w", err)
		}
		p.modelPath = modelPath
	}

	session, err := hugot.NewORTSession(
		options.WithIntraOpNumThreads(runtime.NumCPU()),
	)
	if err != nil {
		return fmt.Errorf("create ORT session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.FeatureExtractionConfig{
		ModelPath: p.modelPath,
		Name:      filepath.Base(p.modelRepo),
	})
	if err != nil {
		session.Destroy()
		return fmt.Errorf("create feature extraction pipeline: %w", err)
	}

	p.session = session
	p.pipeline = pipeline
	p.loaded = true
	return nil
}

// Embed implements Provider.
func (p *ONNXProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return vectors[0], nil
}

// EmbedBatch implements Provider.
func (p *ONNXProvider) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.loaded {
		return nil, ErrUnavailable
	}

	output, err := p.pipeline.RunPipeline(texts)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	vectors := make([][]float64, len(output.Embeddings))
	for i, emb := range output.Embeddings {
		vec := make([]float64, len(emb))
		for j, v := range emb {
			vec[j] = float64(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// Close releases the inference session.
func (p *ONNXProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session != nil {
		p.session.Destroy()
		p.session = nil
	}
	p.pipeline = nil
	p.loaded = false
	return nil
}
