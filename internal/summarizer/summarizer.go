package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Summarize summarizes every chunk of transcript in order, then asks the
// generator to merge the partial summaries. Calls are sequential and the
// first failure aborts the whole operation; nothing partial is returned.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	startTime := time.Now()
	chunks := Chunk(transcript, s.maxChars)

	s.logger.Info(ctx, "Summarizing transcript with %s: %d chars in %d chunk(s)",
		s.generator.Name(), len(transcript), len(chunks))

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Debug(ctx, "[%d/%d] Summarizing chunk", i+1, len(chunks))

		partial, err := s.generator.Generate(ctx, s.chunkPrompt+chunk)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		partials = append(partials, partial)
	}

	final, err := s.generator.Generate(ctx, s.combinePrompt+strings.Join(partials, "\n"))
	if err != nil {
		return "", fmt.Errorf("combine partial summaries: %w", err)
	}

	s.logger.Info(ctx, "Summary ready in %s", time.Since(startTime))
	return final, nil
}
