// Package illustration wraps a scene description in the house illustration
// style and asks the image service for a single picture.
package illustration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"storybook/pkg/imaging"
	"storybook/pkg/utils"
)

const StylePrefix = "black and white children's book pen illustration of "

var (
	ErrEmptyDescription = errors.New("description is required")
	ErrNoImages         = errors.New("no images generated")
)

// BuildImagePrompt prefixes description with the fixed illustration style.
func BuildImagePrompt(description string) string {
	return StylePrefix + description
}

type Image struct {
	Prompt string `json:"prompt"`
	URL    string `json:"image_url"`
}

type Illustrator struct {
	Synthesizer imaging.Synthesizer
	Model       string
}

func NewIllustrator(s imaging.Synthesizer, model string) *Illustrator {
	return &Illustrator{Synthesizer: s, Model: model}
}

// RequestImage forwards fullPrompt with the configured model and returns the
// first result URL.
func (i *Illustrator) RequestImage(ctx context.Context, fullPrompt string) (string, error) {
	urls, err := i.Synthesizer.Synthesize(ctx, i.Model, fullPrompt)
	if err != nil {
		return "", fmt.Errorf("image synthesis failed: %w", err)
	}
	if len(urls) == 0 {
		return "", ErrNoImages
	}
	return urls[0], nil
}

// Illustrate builds the styled prompt for description and requests one image.
// The returned Image carries the raw description, not the styled prompt.
func (i *Illustrator) Illustrate(ctx context.Context, description string) (Image, error) {
	if strings.TrimSpace(description) == "" {
		return Image{}, ErrEmptyDescription
	}

	log.Debug("requesting illustration", "description", utils.LimitStr(description, 50), "model", i.Model)
	url, err := i.RequestImage(ctx, BuildImagePrompt(description))
	if err != nil {
		return Image{}, err
	}
	return Image{Prompt: description, URL: url}, nil
}
