// Package searchkit is a toolkit for building search features on Azure AI
// Search.
//
// The toolkit is organized as independent packages under pkg/ that share a
// configuration style (environment variables parsed into tagged structs) and
// an error style (sentinel values checked with errors.Is):
//
//   - pkg/config — .env and environment variable loading into typed structs.
//   - pkg/azsearch — the search service client: index management, document
//     indexing and queries, including vector and semantic search.
//   - pkg/vectorizer — text embedding for vector search.
//   - pkg/searchcache — read-through Redis caching of query results.
//   - pkg/redis — Redis connection helper backing the cache.
//   - pkg/logger — slog factory with consistent attribute helpers.
//
// A minimal setup reads the three service variables from the environment and
// converges an index onto a schema:
//
//	var cfg azsearch.Config
//	config.MustLoad(&cfg)
//
//	client, err := azsearch.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := client.EnsureIndex(ctx, schema); err != nil {
//	    log.Fatal(err)
//	}
package searchkit
