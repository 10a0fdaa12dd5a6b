// Package vectorizer converts text into embeddings for vector search.
//
// It separates the embedding backend (Provider) from text splitting
// (Chunker). The bundled OpenAIProvider uses the official OpenAI client and
// also works against Azure OpenAI deployments via OPENAI_BASE_URL. Vectors
// are float32 slices, matching Collection(Edm.Single) fields on the search
// service so provider output can be placed into documents and vector queries
// directly.
//
// # Usage
//
//	provider, err := vectorizer.NewOpenAIProvider(vectorizer.OpenAIConfig{APIKey: key})
//	if err != nil {
//	    return err
//	}
//	v, _ := vectorizer.NewWithDefaults(provider)
//
//	// Embed a query.
//	qvec, err := v.ToVector(ctx, "quiet hotel near the harbor")
//
//	// Embed a document, chunked.
//	chunks, err := v.Process(ctx, longText, vectorizer.ChunkOptions{MaxChunkSize: 800, Overlap: 100})
//
// # Error Handling
//
// Sentinel errors (ErrEmptyText, ErrVectorizationFailed, ErrAPIKeyRequired,
// ErrInvalidModel) can be checked with errors.Is; provider failures are
// joined onto ErrVectorizationFailed with the transport error preserved.
package vectorizer
