package story

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// IdeaTemplate is sent for every story page. The single {idea} slot receives
// either the original idea or the reader's latest choice.
const IdeaTemplate = `I am a creative children's author with sci/fi technological interests.
I want to write dynamic choose your own adventure stories in which the user chooses between different paths.

Please respond to an initial story prompt by generating 1 page (3-4 paragraphs) of story content that lead up to a decision, to be made by the reader. It will present 2-3 choices.
The reader will make the decision, then the story will continue with 1 more page, and another decision of 2-3 choices.
If the reader enters a different suggestion, follow that instead.

Start generating the first page for the story, followed by the choices.

The story idea is:
{idea}

Page 1:
`

// PromptTemplate is an immutable f-string template rendered into a single
// user message.
type PromptTemplate struct {
	text string
	tpl  *prompt.DefaultChatTemplate
}

func NewPromptTemplate(text string) *PromptTemplate {
	return &PromptTemplate{
		text: text,
		tpl:  prompt.FromMessages(schema.FString, schema.UserMessage(text)),
	}
}

func (p *PromptTemplate) String() string {
	return p.text
}

// Format fills the named slots and returns the rendered text.
func (p *PromptTemplate) Format(ctx context.Context, vars map[string]any) (string, error) {
	messages, err := p.tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("failed to format prompt: %w", err)
	}
	if len(messages) != 1 {
		return "", fmt.Errorf("expected 1 prompt message, got %d", len(messages))
	}
	return messages[0].Content, nil
}
