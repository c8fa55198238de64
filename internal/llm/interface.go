package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the service answers without any text.
var ErrEmptyResponse = errors.New("empty response from generation service")

// Generator sends one prompt to a text-generation service and returns its answer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
