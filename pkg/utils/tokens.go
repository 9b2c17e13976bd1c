package utils

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter returns a function counting tokens with the encoding for
// model, falling back to cl100k_base for models tiktoken does not know.
// The encoding is loaded on first use.
func TokenCounter(model string) func(string) (int, error) {
	encoding := sync.OnceValues(func() (*tiktoken.Tiktoken, error) {
		tkm, err := tiktoken.EncodingForModel(model)
		if err != nil {
			return tiktoken.GetEncoding("cl100k_base")
		}
		return tkm, nil
	})

	return func(text string) (int, error) {
		tkm, err := encoding()
		if err != nil {
			return 0, err
		}
		return len(tkm.Encode(text, nil, nil)), nil
	}
}
