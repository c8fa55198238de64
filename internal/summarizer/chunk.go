package summarizer

import "unicode/utf8"

// Chunk splits text into consecutive pieces of maxChars characters (runes).
// Splits happen at fixed offsets and may fall inside a word. The last piece
// may be shorter. Empty text yields a single empty chunk so that it still
// gets one summarization call.
func Chunk(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if text == "" {
		return []string{""}
	}

	chunks := make([]string, 0, utf8.RuneCountInString(text)/maxChars+1)
	start, count := 0, 0
	for i := range text {
		if count == maxChars {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	chunks = append(chunks, text[start:])

	return chunks
}
