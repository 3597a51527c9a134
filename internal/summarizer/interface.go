package summarizer

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model produced no text at all.
var ErrEmptyResponse = errors.New("generation response was empty")

// Generator runs one assembled prompt through the generation model and
// returns the raw text blob.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
