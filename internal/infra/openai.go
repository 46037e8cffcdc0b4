package infra

import (
	"github.com/sashabaranov/go-openai"
)

// NewOpenAIClient builds the client for the demand-forecast collaborator.
// The forecast call is the only external dependency of the core and is made
// exactly once per request — failures surface to the caller as-is.
func NewOpenAIClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}
