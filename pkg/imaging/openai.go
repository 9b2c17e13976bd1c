package imaging

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAISynthesizer uses the OpenAI Images API with URL responses.
type OpenAISynthesizer struct {
	client *openai.Client
	apiKey string
}

func NewOpenAISynthesizer(apiKey string) *OpenAISynthesizer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAISynthesizer{client: &client, apiKey: apiKey}
}

func (o *OpenAISynthesizer) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
	)
	o.client = &client
}

func (o *OpenAISynthesizer) Synthesize(ctx context.Context, model, prompt string) ([]string, error) {
	resp, err := o.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(model),
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image error: %w", err)
	}

	urls := make([]string, 0, len(resp.Data))
	for _, img := range resp.Data {
		if img.URL != "" {
			urls = append(urls, img.URL)
		}
	}
	return urls, nil
}
