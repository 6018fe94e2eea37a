// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-relevance/internal/scorer"
)

// Embedding backend selectors.
const (
	BackendOff    = "off"
	BackendOpenAI = "openai"
	BackendONNX   = "onnx"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Scoring
	Weights        scorer.Weights `json:"weights,omitempty"`
	FuzzyThreshold float64        `json:"fuzzy_threshold,omitempty" validate:"gte=0,lte=1"`

	// Embeddings
	EmbeddingBackend string `json:"embedding_backend,omitempty" validate:"omitempty,oneof=off openai onnx"`
	EmbeddingModel   string `json:"embedding_model,omitempty"`
	OpenAIAPIKey     string `json:"openai_api_key,omitempty"`

	// Embedding cache
	CacheDir     string `json:"cache_dir,omitempty"`
	CacheMaxSize int    `json:"cache_max_size,omitempty" validate:"gte=0"`
	CacheTTLDays int    `json:"cache_ttl_days,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
	JSONLog bool `json:"json_log,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.EmbeddingBackend == BackendOpenAI && c.OpenAIAPIKey == "" && os.Getenv("OPENAI_API_KEY") == "" {
		return fmt.Errorf("config error: embedding_backend %q requires openai_api_key or OPENAI_API_KEY", BackendOpenAI)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Weights == (scorer.Weights{}) {
		result.Weights = defaults.Weights
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.EmbeddingBackend == "" {
		result.EmbeddingBackend = defaults.EmbeddingBackend
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.CacheDir == "" {
		result.CacheDir = defaults.CacheDir
	}
	if result.CacheMaxSize == 0 {
		result.CacheMaxSize = defaults.CacheMaxSize
	}
	if result.CacheTTLDays == 0 {
		result.CacheTTLDays = defaults.CacheTTLDays
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the baseline configuration applied under any explicit
// config file or flags.
func Defaults() Config {
	return Config{
		Weights:          scorer.DefaultWeights(),
		FuzzyThreshold:   0.7,
		EmbeddingBackend: BackendOff,
		CacheMaxSize:     10000,
		CacheTTLDays:     7,
	}
}

// CacheTTL converts the configured TTL in days to a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}

// APIKey resolves the OpenAI key from config or environment.
func (c *Config) APIKey() string {
	if c.OpenAIAPIKey != "" {
		return c.OpenAIAPIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}
