package summarizer

import (
	"github.com/kchglobal/minutes-flow/internal/logger"
)

type implGenerator struct {
	apiKey string
	model  string
	logger logger.Logger
}

// New creates a Generator backed by the Gemini API.
func New(apiKey, model string, log logger.Logger) Generator {
	return &implGenerator{
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
}
