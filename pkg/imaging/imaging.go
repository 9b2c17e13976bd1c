// Package imaging talks to text-to-image services. A Synthesizer turns a
// prompt into one or more result URLs and keeps no state between calls.
package imaging

import (
	"context"
	"errors"
	"fmt"

	"storybook/pkg/config"
)

var (
	ErrUnknownProvider = errors.New("unknown image provider")
	ErrMissingToken    = errors.New("image service token not configured")
)

type Synthesizer interface {
	Synthesize(ctx context.Context, model, prompt string) ([]string, error)
}

// New builds the synthesizer selected by cfg.Provider.
func New(cfg config.Image) (Synthesizer, error) {
	switch cfg.Provider {
	case "", "replicate":
		return NewReplicateSynthesizer(cfg.ReplicateToken), nil
	case "openai":
		return NewOpenAISynthesizer(cfg.OpenAIKey), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
