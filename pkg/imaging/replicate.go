package imaging

import (
	"context"
	"fmt"
	"sync"

	"github.com/replicate/replicate-go"
)

type ReplicateSynthesizer struct {
	client func() (*replicate.Client, error)
}

// NewReplicateSynthesizer defers client creation to the first call so a
// missing token fails that request rather than startup.
func NewReplicateSynthesizer(token string, opts ...replicate.ClientOption) *ReplicateSynthesizer {
	return &ReplicateSynthesizer{
		client: sync.OnceValues(func() (*replicate.Client, error) {
			if token == "" {
				return nil, ErrMissingToken
			}
			return replicate.NewClient(append([]replicate.ClientOption{replicate.WithToken(token)}, opts...)...)
		}),
	}
}

// Synthesize runs model ("owner/name:version") with the prompt as its only
// input and waits for the prediction to finish.
func (r *ReplicateSynthesizer) Synthesize(ctx context.Context, model, prompt string) ([]string, error) {
	client, err := r.client()
	if err != nil {
		return nil, fmt.Errorf("replicate client: %w", err)
	}

	output, err := client.Run(ctx, model, replicate.PredictionInput{"prompt": prompt}, nil)
	if err != nil {
		return nil, fmt.Errorf("replicate run %s: %w", model, err)
	}
	return outputURLs(output)
}

// outputURLs flattens the shapes Replicate models return for image output.
func outputURLs(output any) ([]string, error) {
	switch v := output.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		urls := make([]string, 0, len(v))
		for i, it := range v {
			s, ok := it.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected output item %d of type %T", i, it)
			}
			urls = append(urls, s)
		}
		return urls, nil
	default:
		return nil, fmt.Errorf("unexpected output type %T", output)
	}
}
