package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// Preset describes an OpenAI-compatible endpoint.
type Preset struct {
	BaseURL string
	Model   string
}

var Presets = map[string]Preset{
	"openai":   {Model: "gpt-4o-mini"},
	"grok":     {BaseURL: "https://api.x.ai/v1", Model: "grok-4-fast-reasoning"},
	"moonshot": {BaseURL: "https://api.moonshot.ai/v1", Model: "kimi-k2-5"},
	"kimi":     {BaseURL: "https://api.kimi.com/coding/v1", Model: "kimi-for-coding"},
}

// OpenAIInferencer implements Inferencer using OpenAI's official Go SDK.
type OpenAIInferencer struct {
	Sampling Sampling

	client *openai.Client
	name   string
	apiKey string
	model  string
}

// NewOpenAIInferencer creates a new inferencer instance using OpenAI client.
func NewOpenAIInferencer(apiKey string, model string) *OpenAIInferencer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIInferencer{
		Sampling: DefaultSampling,
		client:   &client,
		name:     "openai",
		apiKey:   apiKey,
		model:    model,
	}
}

// NewPresetInferencer creates an inferencer for one of the OpenAI-compatible
// Presets. An empty model falls back to the preset default.
func NewPresetInferencer(name, apiKey, model string) *OpenAIInferencer {
	name = cmp.Or(name, "openai")
	preset := Presets[name]
	o := NewOpenAIInferencer(apiKey, cmp.Or(model, preset.Model))
	o.name = name
	if preset.BaseURL != "" {
		o.ChangeBaseURL(preset.BaseURL)
	}
	return o
}

func (o *OpenAIInferencer) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
	)
	o.client = &client
}

func (o *OpenAIInferencer) SetModel(model string) {
	o.model = model
}

func (o *OpenAIInferencer) Model() string {
	return o.model
}

// Infer sends text to the chat completion endpoint and returns the output.
// An empty system prompt sends the user text as the only message.
func (o *OpenAIInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	if params == nil {
		params = new(openai.ChatCompletionNewParams)
	} else {
		p := *params
		params = &p
	}
	params.Model = cmp.Or(params.Model, o.model)
	params.Messages = chatMessages(system, user)

	if !params.MaxCompletionTokens.Valid() {
		params.MaxCompletionTokens = openai.Int(o.Sampling.MaxTokens)
	}
	if !params.Temperature.Valid() {
		params.Temperature = openai.Float(o.Sampling.Temperature)
	}
	if !params.TopP.Valid() {
		params.TopP = openai.Float(o.Sampling.TopP)
	}

	resp, err := o.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		return "", fmt.Errorf("%s inference error: %w", o.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

func chatMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessageParamUnion{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Role: "system",
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: param.Opt[string]{Value: system},
				},
			},
		})
	}
	return append(messages, openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Role: "user",
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: param.Opt[string]{Value: user},
			},
		},
	})
}
