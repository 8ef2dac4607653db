// Package generate runs rendered prompts against a text generation
// provider. Providers share retry behavior and response cleanup; the
// prompt itself is built elsewhere and passed in verbatim.
package generate

import (
	"context"
	"time"
)

const (
	temperature    = 0.7
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	backoffMult    = 2
)

// Options tune a single generation call.
type Options struct {
	// MaxTokens caps the response length. Zero means DefaultMaxTokens.
	MaxTokens int64
	// Temperature overrides the default sampling temperature when
	// non-zero.
	Temperature float64
}

// DefaultMaxTokens fits a long-form blog post with headroom.
const DefaultMaxTokens = 8192

func (o Options) maxTokens() int64 {
	if o.MaxTokens > 0 {
		return o.MaxTokens
	}
	return DefaultMaxTokens
}

func (o Options) temperature() float64 {
	if o.Temperature > 0 {
		return o.Temperature
	}
	return temperature
}

// Generator produces text from a fully rendered prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}
