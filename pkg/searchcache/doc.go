// Package searchcache provides a read-through Redis cache for search query
// results.
//
// Queries against a hosted search service are billed and rate limited, so
// repeated identical requests are worth short-circuiting. The cache keys on a
// hash of the full request body scoped by index name, stores result pages as
// JSON with a TTL, and degrades gracefully: when Redis is unreachable,
// Search falls through to the service instead of failing.
//
// # Usage
//
//	cache, err := searchcache.New(rdb, searchcache.Config{TTL: 5 * time.Minute})
//	if err != nil {
//	    return err
//	}
//
//	results, err := cache.Search(ctx, client, azsearch.SearchRequest{Search: "harbor", Top: 10})
//
//	// After writing documents, drop the index's cached pages.
//	_, _ = client.UploadDocuments(ctx, docs)
//	_ = cache.Invalidate(ctx, client.IndexName())
package searchcache
