package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-relevance/internal/config"
	"github.com/jonathan/resume-relevance/internal/embedding"
	"github.com/jonathan/resume-relevance/internal/logger"
	"github.com/jonathan/resume-relevance/internal/normalizer"
	"github.com/jonathan/resume-relevance/internal/schemas"
	"github.com/jonathan/resume-relevance/internal/scorer"
	"github.com/jonathan/resume-relevance/internal/semantic"
	"github.com/jonathan/resume-relevance/internal/taxonomy"
	"github.com/jonathan/resume-relevance/internal/types"
)

// loadConfig resolves the effective config: file values (when --config is
// set) over the built-in defaults.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// engineComponents bundles everything a scoring command needs.
type engineComponents struct {
	logger     *zap.Logger
	normalizer *normalizer.Normalizer
	scorer     *scorer.Scorer
	cleanup    func()
}

// buildComponents wires the taxonomy, normalizer, embedding provider,
// semantic engine, and scorer from the effective config.
func buildComponents(cfg config.Config) (*engineComponents, error) {
	log, err := logger.New(cfg.JSONLog || jsonLog, cfg.Verbose || verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	tax := taxonomy.New()
	norm := normalizer.New(tax, cfg.FuzzyThreshold, log)

	cleanup := func() { _ = log.Sync() }

	var similarity *embedding.Similarity
	if cfg.EmbeddingBackend != config.BackendOff {
		provider, closeProvider, err := buildProvider(cfg)
		if err != nil {
			return nil, err
		}
		if closeProvider != nil {
			prev := cleanup
			cleanup = func() { closeProvider(); prev() }
		}

		cache, err := embedding.NewCache(embedding.CacheConfig{
			Dir:     cfg.CacheDir,
			MaxSize: cfg.CacheMaxSize,
			TTL:     cfg.CacheTTL(),
		}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to build embedding cache: %w", err)
		}
		cached := embedding.NewCachedProvider(provider, cache, embedding.DefaultBatchSize, log)
		similarity = embedding.NewSimilarity(cached)
	}

	engine := semantic.NewEngine(norm, similarity, semantic.DefaultWeights(similarity != nil), log)
	score := scorer.New(engine, cfg.Weights, log)

	return &engineComponents{
		logger:     log,
		normalizer: norm,
		scorer:     score,
		cleanup:    cleanup,
	}, nil
}

// buildProvider constructs the configured embedding backend. The returned
// close function is nil when the backend holds no resources.
func buildProvider(cfg config.Config) (embedding.Provider, func(), error) {
	switch cfg.EmbeddingBackend {
	case config.BackendOpenAI:
		return embedding.NewOpenAI(cfg.APIKey(), cfg.EmbeddingModel), nil, nil
	case config.BackendONNX:
		provider, err := embedding.NewONNX(embedding.ONNXConfig{
			ModelRepo: cfg.EmbeddingModel,
			CacheDir:  cfg.CacheDir,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build onnx provider: %w", err)
		}
		return provider, func() { _ = provider.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown embedding backend %q", cfg.EmbeddingBackend)
	}
}

// loadResume reads and unmarshals a ResumeData JSON file, validating it
// against the schema when the schema file can be located.
func loadResume(path string) (types.ResumeData, error) {
	var resume types.ResumeData
	data, err := os.ReadFile(path)
	if err != nil {
		return resume, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	validateInput(schemas.ResumeDataSchema, path)
	if err := json.Unmarshal(data, &resume); err != nil {
		return resume, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return resume, nil
}

// loadJob reads and unmarshals a JobDescription JSON file.
func loadJob(path string) (types.JobDescription, error) {
	var job types.JobDescription
	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	validateInput(schemas.JobDescriptionSchema, path)
	if err := json.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	return job, nil
}

// validateInput checks an input file against its schema. Validation problems
// are warnings, not failures: the engine itself is permissive about thin
// input.
func validateInput(schemaRelPath, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Input validation failed: %v\n", err)
	}
}

// printJSON marshals v with indentation and prints it to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// output directory when needed.
func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
