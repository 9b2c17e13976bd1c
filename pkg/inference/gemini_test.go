package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storybook/pkg/config"
)

type geminiRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
	GenerationConfig struct {
		Temperature     *float64 `json:"temperature"`
		MaxOutputTokens int64    `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

func fakeGeminiServer(t *testing.T, text string, got *geminiRequest, path *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		*path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiInferencer_Infer(t *testing.T) {
	var got geminiRequest
	var path string
	srv := fakeGeminiServer(t, "PAGE 1\n\nChoice A", &got, &path)

	g := NewGeminiInferencer("test-key", "")
	g.ChangeBaseURL(srv.URL + "/")

	out, err := g.Infer(context.Background(), nil, "", "The story idea is: a fox")
	require.NoError(t, err)

	assert.Equal(t, "PAGE 1\n\nChoice A", out)
	assert.Contains(t, path, "/models/gemini-2.5-flash:generateContent")
	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "The story idea is: a fox", got.Contents[0].Parts[0].Text)
	assert.Nil(t, got.SystemInstruction)
	assert.EqualValues(t, DefaultSampling.MaxTokens, got.GenerationConfig.MaxOutputTokens)
	require.NotNil(t, got.GenerationConfig.Temperature)
	assert.InDelta(t, DefaultSampling.Temperature, *got.GenerationConfig.Temperature, 1e-6)
}

func TestGeminiInferencer_ZeroTemperatureFromConfig(t *testing.T) {
	var got geminiRequest
	var path string
	srv := fakeGeminiServer(t, "ok", &got, &path)

	inf, err := New(config.Text{Provider: "gemini", GeminiKey: "test-key", BaseURL: srv.URL + "/", Temperature: 0})
	require.NoError(t, err)

	_, err = inf.Infer(context.Background(), nil, "be brief", "a fox")
	require.NoError(t, err)

	require.NotNil(t, got.GenerationConfig.Temperature)
	assert.Zero(t, *got.GenerationConfig.Temperature)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "be brief", got.SystemInstruction.Parts[0].Text)
}
