package vectorizer

import "errors"

var (
	ErrProviderNotSet      = errors.New("vectorization provider not set")
	ErrChunkerNotSet       = errors.New("chunker not set")
	ErrEmptyText           = errors.New("text cannot be empty")
	ErrVectorizationFailed = errors.New("failed to vectorize text")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrInvalidModel        = errors.New("invalid embedding model")
)
