package tokens

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const approxCharsPerToken = 4

const defaultModel = "gpt-4o-mini"

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
	model       = defaultModel

	estimateFunc = defaultEstimate
)

// Configure selects the tokenizer model. It only has effect before the first
// estimate; the encoder is initialized once.
func Configure(modelName string) {
	if modelName != "" {
		model = modelName
	}
}

// Estimate returns the token count of text under the configured model,
// falling back to a chars/4 heuristic when no encoder is available.
func Estimate(text string) int {
	return estimateFunc(text)
}

func defaultEstimate(text string) int {
	enc := getEncoder()
	if enc != nil {
		toks := enc.Encode(text, nil, nil)
		if len(toks) > 0 {
			return len(toks)
		}
	}
	return maxInt(1, len(text)/approxCharsPerToken)
}

func getEncoder() *tiktoken.Tiktoken {
	encoderOnce.Do(func() {
		enc, err := tiktoken.EncodingForModel(model)
		if err != nil {
			enc, err = tiktoken.GetEncoding("cl100k_base")
		}
		encoder = enc
	})
	return encoder
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
