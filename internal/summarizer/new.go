package summarizer

import (
	"github.com/divyakumars/video-summarizer/internal/llm"
	"github.com/divyakumars/video-summarizer/internal/logger"
)

const (
	// DefaultMaxChars is the chunk size in characters. It is a fixed safety
	// margin, not derived from the model's token limit.
	DefaultMaxChars = 5000

	DefaultChunkPrompt   = "Summarize this transcript part:\n\n"
	DefaultCombinePrompt = "Combine these partial summaries into a concise overall summary:\n\n"
)

// Options tunes chunk size and prompts. Zero values select the defaults.
type Options struct {
	MaxChars      int
	ChunkPrompt   string
	CombinePrompt string
}

type implSummarizer struct {
	generator     llm.Generator
	logger        logger.Logger
	maxChars      int
	chunkPrompt   string
	combinePrompt string
}

// New creates a Summarizer that uses gen for every chunk and for the final combine call.
func New(gen llm.Generator, log logger.Logger, opts Options) Summarizer {
	s := &implSummarizer{
		generator:     gen,
		logger:        log,
		maxChars:      opts.MaxChars,
		chunkPrompt:   opts.ChunkPrompt,
		combinePrompt: opts.CombinePrompt,
	}
	if s.maxChars <= 0 {
		s.maxChars = DefaultMaxChars
	}
	if s.chunkPrompt == "" {
		s.chunkPrompt = DefaultChunkPrompt
	}
	if s.combinePrompt == "" {
		s.combinePrompt = DefaultCombinePrompt
	}
	return s
}
