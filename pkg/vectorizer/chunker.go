package vectorizer

import "strings"

// ChunkOptions controls text splitting. Sizes are in runes.
type ChunkOptions struct {
	// MaxChunkSize is the upper bound for a chunk. Defaults to 1000.
	MaxChunkSize int
	// Overlap is how many trailing runes of a chunk are repeated at the
	// start of the next one to preserve context across boundaries.
	Overlap int
}

func (o ChunkOptions) withDefaults() ChunkOptions {
	if o.MaxChunkSize <= 0 {
		o.MaxChunkSize = 1000
	}
	if o.Overlap < 0 || o.Overlap >= o.MaxChunkSize {
		o.Overlap = 0
	}
	return o
}

// Chunker splits text into pieces suitable for embedding.
type Chunker interface {
	Split(text string, options ChunkOptions) []string
}

// SimpleChunker splits on sentence boundaries where possible, falling back
// to hard cuts for pathological inputs without punctuation.
type SimpleChunker struct{}

// NewSimpleChunker returns the default chunker.
func NewSimpleChunker() *SimpleChunker {
	return &SimpleChunker{}
}

// Split implements Chunker.
func (c *SimpleChunker) Split(text string, options ChunkOptions) []string {
	options = options.withDefaults()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= options.MaxChunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + options.MaxChunkSize
		if end >= len(runes) {
			chunks = append(chunks, strings.TrimSpace(string(runes[start:])))
			break
		}

		// Prefer the last sentence boundary inside the window; settle for a
		// word boundary; hard cut as the last resort.
		cut := lastBoundary(runes[start:end], ".!?\n")
		if cut <= 0 {
			cut = lastBoundary(runes[start:end], " \t")
		}
		if cut <= 0 {
			cut = options.MaxChunkSize
		}

		chunk := strings.TrimSpace(string(runes[start : start+cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := start + cut - options.Overlap
		if next <= start {
			next = start + cut
		}
		start = next
	}

	return chunks
}

// lastBoundary returns the index just past the last occurrence of any of the
// given boundary runes, or -1 if none is present.
func lastBoundary(runes []rune, boundaries string) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if strings.ContainsRune(boundaries, runes[i]) {
			return i + 1
		}
	}
	return -1
}
