// Package azsearch provides a client for Azure AI Search covering index
// management, document indexing and queries, with type-safe configuration and
// standardized error values.
//
// The package speaks the service's REST API directly (there is no official Go
// SDK for Azure AI Search) and focuses on four public touch points:
//
//   - Config – declarative representation of connection settings that can be
//     populated from environment variables via
//     github.com/dmitrymomot/searchkit/pkg/config.
//
//   - New – constructs a *Client bound to an endpoint, an index and an admin
//     api-key. Construction validates the configuration and performs no
//     network I/O, so a missing variable fails before any call is attempted.
//
//   - Index, Field and the schema helpers – the JSON model of an index
//     definition, including vector search profiles and semantic
//     configurations.
//
//   - Healthcheck – returns a function suitable for liveness / readiness
//     probes (for example in HTTP /health endpoints).
//
// # Usage
//
// Environment-based construction, then converging an index onto a schema:
//
//	var cfg azsearch.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err) // e.g. AZURE_SEARCH_ADMIN_KEY is not set
//	}
//
//	client, err := azsearch.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = client.EnsureIndex(ctx, azsearch.Index{
//	    Fields: []azsearch.Field{
//	        azsearch.KeyField("id"),
//	        azsearch.SearchableField("content"),
//	        azsearch.VectorField("embedding", 1536, "default-profile"),
//	    },
//	    VectorSearch: &azsearch.VectorSearch{
//	        Algorithms: []azsearch.VectorAlgorithm{azsearch.HNSWAlgorithm("hnsw")},
//	        Profiles:   []azsearch.VectorProfile{{Name: "default-profile", Algorithm: "hnsw"}},
//	    },
//	})
//
// Indexing and querying documents:
//
//	_, err = client.UploadDocuments(ctx, docs, azsearch.WithGeneratedKeys("id"))
//
//	results, err := client.Search(ctx, azsearch.SearchRequest{
//	    Search: "waterfront hotel",
//	    Top:    10,
//	    VectorQueries: []azsearch.VectorQuery{
//	        azsearch.NewVectorQuery(embedding, 10, "embedding"),
//	    },
//	})
//
// # Error Handling
//
// Use errors.Is to check for sentinel errors:
//
//	if _, err := client.GetIndex(ctx, "hotels"); errors.Is(err, azsearch.ErrIndexNotFound) {
//	    // create it
//	}
//
// Batch indexing returns ErrPartialFailure together with the per-document
// results when the service rejects a subset of the batch.
//
// # Concurrency
//
// The client is immutable after construction and safe for concurrent use.
// Retries for throttled (429) and transient 5xx responses are handled inside
// the client according to Config.MaxRetries.
package azsearch
