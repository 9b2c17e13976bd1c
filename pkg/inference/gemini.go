package inference

import (
	"cmp"
	"context"
	"fmt"
	"sync"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"
)

type GeminiInferencer struct {
	Sampling Sampling

	client  func() (*genai.Client, error)
	apiKey  string
	baseURL string
	model   string
}

// NewGeminiInferencer creates a Gemini inferencer. The client is built on
// first use, so a missing key surfaces as a request error.
func NewGeminiInferencer(apiKey string, model string) *GeminiInferencer {
	o := &GeminiInferencer{
		Sampling: DefaultSampling,
		apiKey:   apiKey,
		model:    cmp.Or(model, "gemini-2.5-flash"),
	}
	o.resetClient()
	return o
}

func (o *GeminiInferencer) ChangeBaseURL(baseURL string) {
	o.baseURL = baseURL
	o.resetClient()
}

func (o *GeminiInferencer) Model() string {
	return o.model
}

func (o *GeminiInferencer) resetClient() {
	apiKey, baseURL := o.apiKey, o.baseURL
	o.client = sync.OnceValues(func() (*genai.Client, error) {
		return genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:      apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
		})
	})
}

// Infer sends text to the Gemini generate content endpoint and returns the output.
func (o *GeminiInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	if params == nil {
		params = new(openai.ChatCompletionNewParams)
	}
	client, err := o.client()
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(o.Sampling.MaxTokens),
		Temperature:     genai.Ptr(float32(o.Sampling.Temperature)),
		TopP:            genai.Ptr(float32(o.Sampling.TopP)),
	}
	if params.MaxCompletionTokens.Valid() {
		config.MaxOutputTokens = int32(params.MaxCompletionTokens.Value)
	}
	if params.Temperature.Valid() {
		config.Temperature = genai.Ptr(float32(params.Temperature.Value))
	}
	if params.TopP.Valid() {
		config.TopP = genai.Ptr(float32(params.TopP.Value))
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	result, err := client.Models.GenerateContent(
		ctx,
		cmp.Or(params.Model, o.model),
		genai.Text(user),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return result.Text(), nil
}
