// Package embedding maps text to fixed-dimension semantic vectors behind a
// pluggable Provider interface, with a two-tier (memory + disk) cache.
package embedding

import (
	"context"
	"errors"
)

// ErrUnavailable signals that no embedding backend is configured or usable.
// Callers are expected to degrade (drop the embedding-weighted term and
// renormalize) rather than treat this as fatal.
var ErrUnavailable = errors.New("embedding backend unavailable")

// Provider defines the interface for generating text embeddings.
type Provider interface {
	// Embed generates an embedding for a single text string.
	Embed(ctx context.Context, text string) ([]float64, error)

	// EmbedBatch generates embeddings for multiple text strings, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)

	// Model identifies the underlying model; used as part of cache keys.
	Model() string
}

// Disabled is the null Provider used when embeddings are turned off. Every
// call returns ErrUnavailable.
type Disabled struct{}

// Embed implements Provider.
func (Disabled) Embed(context.Context, string) ([]float64, error) {
	return nil, ErrUnavailable
}

// EmbedBatch implements Provider.
func (Disabled) EmbedBatch(context.Context, []string) ([][]float64, error) {
	return nil, ErrUnavailable
}

// Model implements Provider.
func (Disabled) Model() string { return "disabled" }
