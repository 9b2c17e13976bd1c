package inference

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"

	"storybook/pkg/config"
)

var ErrUnknownProvider = errors.New("unknown text provider")

// Inferencer defines an interface for running text completions.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
}

// Sampling holds the fallbacks used when a call leaves a parameter unset.
type Sampling struct {
	MaxTokens   int64
	Temperature float64
	TopP        float64
}

var DefaultSampling = Sampling{
	MaxTokens:   1024,
	Temperature: 0.7,
	TopP:        1.0,
}

// New builds the inferencer selected by cfg.Provider.
func New(cfg config.Text) (Inferencer, error) {
	// zero is a valid temperature; config.Load supplies the default
	sampling := DefaultSampling
	sampling.Temperature = cfg.Temperature
	if cfg.MaxTokens > 0 {
		sampling.MaxTokens = cfg.MaxTokens
	}

	switch cfg.Provider {
	case "gemini":
		g := NewGeminiInferencer(cfg.APIKey(), cfg.Model)
		if cfg.BaseURL != "" {
			g.ChangeBaseURL(cfg.BaseURL)
		}
		g.Sampling = sampling
		return g, nil
	case "", "openai", "grok", "moonshot", "kimi":
		o := NewPresetInferencer(cfg.Provider, cfg.APIKey(), cfg.Model)
		if cfg.BaseURL != "" {
			o.ChangeBaseURL(cfg.BaseURL)
		}
		o.Sampling = sampling
		return o, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
