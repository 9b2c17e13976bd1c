// Package config holds the process-wide settings resolved once at startup.
// The returned Config is treated as read-only and handed to whichever
// component needs it.
package config

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultReplicateModel is the Stable Diffusion version used for illustrations.
const DefaultReplicateModel = "stability-ai/stable-diffusion:ac732df83cea7fff18b8472768c88ad041fa750ff7682a21affe81863cbe77e4"

const DefaultOpenAIImageModel = "dall-e-2"

type Config struct {
	Port  string `env:"PORT" env-default:"8080"`
	Debug bool   `env:"DEBUG" env-default:"false"`
	CSRF  bool   `env:"CSRF" env-default:"true"`

	Text  Text
	Image Image
}

// Text configures the text-completion service.
type Text struct {
	Provider    string  `env:"TEXT_PROVIDER" env-default:"openai"`
	Model       string  `env:"TEXT_MODEL"`
	BaseURL     string  `env:"TEXT_BASE_URL"`
	MaxTokens   int64   `env:"TEXT_MAX_TOKENS" env-default:"1024"`
	Temperature float64 `env:"TEXT_TEMPERATURE" env-default:"0.7"`

	OpenAIKey   string `env:"OPENAI_API_KEY"`
	GrokKey     string `env:"GROK_API_KEY"`
	MoonshotKey string `env:"MOONSHOT_API_KEY"`
	KimiKey     string `env:"KIMI_API_KEY"`
	GeminiKey   string `env:"GEMINI_API_KEY"`
}

// APIKey returns the secret belonging to the selected provider. It may be
// empty; the provider call fails at request time in that case.
func (t Text) APIKey() string {
	switch strings.ToLower(t.Provider) {
	case "grok":
		return t.GrokKey
	case "moonshot":
		return t.MoonshotKey
	case "kimi":
		return t.KimiKey
	case "gemini":
		return t.GeminiKey
	default:
		return t.OpenAIKey
	}
}

// Image configures the image-synthesis service.
type Image struct {
	Provider string `env:"IMAGE_PROVIDER" env-default:"replicate"`
	Model    string `env:"IMAGE_MODEL"`

	ReplicateToken string `env:"REPLICATE_API_TOKEN"`
	OpenAIKey      string `env:"OPENAI_API_KEY"`
}

// ModelID returns the fixed model identifier sent with every image request.
func (i Image) ModelID() string {
	if strings.EqualFold(i.Provider, "openai") {
		return cmp.Or(i.Model, DefaultOpenAIImageModel)
	}
	return cmp.Or(i.Model, DefaultReplicateModel)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Load reads the configuration from the environment. Missing secrets are not
// an error; malformed values are.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg.Text.Provider = strings.ToLower(strings.TrimSpace(cfg.Text.Provider))
	cfg.Image.Provider = strings.ToLower(strings.TrimSpace(cfg.Image.Provider))
	return &cfg, nil
}
