package vectorizer

import (
	"context"
	"errors"
	"strings"
)

// Vector is a text embedding. float32 matches the element type of vector
// fields on the search service, so vectors flow into queries and documents
// without conversion.
type Vector []float32

// Chunk is a piece of text with its embedding and position in the source.
type Chunk struct {
	Text   string `json:"text"`
	Vector Vector `json:"vector"`
	Index  int    `json:"index"`
}

// Provider is a vectorization backend. Implementations handle API
// authentication and transport; they must be safe for concurrent use.
type Provider interface {
	// Vectorize converts a single text into an embedding.
	Vectorize(ctx context.Context, text string) (Vector, error)

	// VectorizeBatch converts multiple texts in one request.
	VectorizeBatch(ctx context.Context, texts []string) ([]Vector, error)

	// Dimensions returns the embedding dimensionality of the current model.
	Dimensions() int
}

// Vectorizer combines a Provider with a Chunker to turn raw text into
// search-ready embedded chunks.
type Vectorizer struct {
	provider Provider
	chunker  Chunker
}

// New creates a Vectorizer. Both the provider and the chunker are required.
func New(provider Provider, chunker Chunker) (*Vectorizer, error) {
	if provider == nil {
		return nil, ErrProviderNotSet
	}
	if chunker == nil {
		return nil, ErrChunkerNotSet
	}
	return &Vectorizer{provider: provider, chunker: chunker}, nil
}

// NewWithDefaults creates a Vectorizer with the default sentence-boundary
// chunker.
func NewWithDefaults(provider Provider) (*Vectorizer, error) {
	return New(provider, NewSimpleChunker())
}

// ToVector embeds a single text, typically a search query.
// Returns ErrEmptyText for blank input.
func (v *Vectorizer) ToVector(ctx context.Context, text string) (Vector, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	vec, err := v.provider.Vectorize(ctx, text)
	if err != nil {
		return nil, errors.Join(ErrVectorizationFailed, err)
	}
	return vec, nil
}

// Process splits a long text into chunks and embeds each one. This is the
// entry point for preparing documents ahead of indexing.
func (v *Vectorizer) Process(ctx context.Context, text string, options ChunkOptions) ([]Chunk, error) {
	texts := v.chunker.Split(text, options)
	if len(texts) == 0 {
		return []Chunk{}, nil
	}

	vectors, err := v.provider.VectorizeBatch(ctx, texts)
	if err != nil {
		return nil, errors.Join(ErrVectorizationFailed, err)
	}
	if len(vectors) != len(texts) {
		return nil, errors.Join(ErrVectorizationFailed, errors.New("provider returned mismatched vector count"))
	}

	chunks := make([]Chunk, len(texts))
	for i := range texts {
		chunks[i] = Chunk{Text: texts[i], Vector: vectors[i], Index: i}
	}
	return chunks, nil
}

// Dimensions returns the embedding dimensionality of the provider's model.
func (v *Vectorizer) Dimensions() int {
	return v.provider.Dimensions()
}
