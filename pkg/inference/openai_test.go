package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   int64   `json:"max_completion_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func fakeChatServer(t *testing.T, content string, got *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 0,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIInferencer_UserOnly(t *testing.T) {
	var got chatRequest
	srv := fakeChatServer(t, "  PAGE 1\n\nChoice A\nChoice B \n", &got)

	o := NewOpenAIInferencer("sk-test", "test-model")
	o.ChangeBaseURL(srv.URL + "/")

	out, err := o.Infer(context.Background(), nil, "", "The story idea is: a fox")
	require.NoError(t, err)

	assert.Equal(t, "  PAGE 1\n\nChoice A\nChoice B \n", out, "inferencer must not alter provider output")
	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "The story idea is: a fox", got.Messages[0].Content)
	assert.EqualValues(t, DefaultSampling.MaxTokens, got.MaxTokens)
	require.NotNil(t, got.Temperature)
	assert.InDelta(t, DefaultSampling.Temperature, *got.Temperature, 1e-9)
}

func TestOpenAIInferencer_SystemAndOverrides(t *testing.T) {
	var got chatRequest
	srv := fakeChatServer(t, "ok", &got)

	o := NewOpenAIInferencer("sk-test", "test-model")
	o.ChangeBaseURL(srv.URL + "/")

	params := &openai.ChatCompletionNewParams{
		Model:               "other-model",
		MaxCompletionTokens: openai.Int(64),
	}
	_, err := o.Infer(context.Background(), params, "be brief", "hello")
	require.NoError(t, err)

	assert.Equal(t, "other-model", got.Model)
	assert.EqualValues(t, 64, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be brief", got.Messages[0].Content)
	assert.Empty(t, params.Messages, "caller params must not be mutated")
}

func TestOpenAIInferencer_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	o := NewOpenAIInferencer("", "test-model")
	o.ChangeBaseURL(srv.URL + "/")

	_, err := o.Infer(context.Background(), nil, "", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai inference error")
}
