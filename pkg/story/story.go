// Package story builds the prompts for each page of a choose-your-own-adventure
// story and passes the generated text back untouched apart from trimming.
//
// No history is kept: every page is generated from the fixed template filled
// with a single phrase, the original idea on the first page and the reader's
// choice afterwards.
package story

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"storybook/pkg/inference"
	"storybook/pkg/utils"
)

var ErrEmptyPrompt = errors.New("prompt is required")

// Turn is one prompt-in, text-out round of the story.
type Turn struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
}

type Orchestrator struct {
	Inferencer inference.Inferencer
	Template   *PromptTemplate

	// CountTokens is optional and only consulted at debug level.
	CountTokens func(string) (int, error)
}

func NewOrchestrator(inf inference.Inferencer, tpl *PromptTemplate) *Orchestrator {
	if tpl == nil {
		tpl = NewPromptTemplate(IdeaTemplate)
	}
	return &Orchestrator{
		Inferencer: inf,
		Template:   tpl,
	}
}

// RenderInitialPrompt substitutes idea into the template. No escaping is applied.
func (o *Orchestrator) RenderInitialPrompt(ctx context.Context, idea string) (string, error) {
	return o.Template.Format(ctx, map[string]any{"idea": idea})
}

// RequestCompletion sends promptText verbatim and returns the trimmed output.
func (o *Orchestrator) RequestCompletion(ctx context.Context, promptText string) (string, error) {
	out, err := o.Inferencer.Infer(ctx, nil, "", promptText)
	if err != nil {
		return "", fmt.Errorf("text completion failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// AdvanceStory returns the prompt for the next page: the reader's choice as typed.
func AdvanceStory(previousIdeaOrChoice, userChoice string) string {
	return userChoice
}

// Generate renders prompt into the template and requests one page.
func (o *Orchestrator) Generate(ctx context.Context, prompt string) (Turn, error) {
	if strings.TrimSpace(prompt) == "" {
		return Turn{}, ErrEmptyPrompt
	}

	text, err := o.RenderInitialPrompt(ctx, prompt)
	if err != nil {
		return Turn{}, err
	}

	if o.CountTokens != nil && log.GetLevel() <= log.DebugLevel {
		if n, err := o.CountTokens(text); err == nil {
			log.Debug("requesting story page", "prompt", utils.LimitStr(prompt, 50), "tokens", n)
		}
	}

	out, err := o.RequestCompletion(ctx, text)
	if err != nil {
		return Turn{}, err
	}
	return Turn{Prompt: prompt, Text: out}, nil
}
