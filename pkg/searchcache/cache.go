package searchcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/searchkit/pkg/azsearch"
)

// Config holds cache behavior parameters with environment variable mapping.
type Config struct {
	// TTL bounds how long a cached result page is served before the service
	// is consulted again.
	TTL time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"5m"`

	// KeyPrefix namespaces cache entries so several applications can share
	// one Redis database.
	KeyPrefix string `env:"SEARCH_CACHE_PREFIX" envDefault:"searchkit:cache"`
}

// Searcher is the slice of the search client the cache reads through to.
// *azsearch.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, req azsearch.SearchRequest) (*azsearch.SearchResults, error)
	IndexName() string
}

// Cache is a read-through Redis cache for search results. Search results are
// index-scoped: invalidate an index after writing documents to it.
type Cache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	prefix string
}

// New creates a Cache on the given Redis client.
func New(rdb redis.UniversalClient, cfg Config) (*Cache, error) {
	if rdb == nil {
		return nil, ErrNilRedisClient
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "searchkit:cache"
	}
	return &Cache{rdb: rdb, ttl: ttl, prefix: prefix}, nil
}

// Key derives the deterministic cache key for a request against an index.
// Identical requests hash to the same key; any differing field yields a
// different one.
func (c *Cache) Key(index string, req azsearch.SearchRequest) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return c.prefix + ":" + index + ":" + hex.EncodeToString(sum[:16])
}

// Get returns the cached results for the request, or ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, index string, req azsearch.SearchRequest) (*azsearch.SearchResults, error) {
	raw, err := c.rdb.Get(ctx, c.Key(index, req)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, errors.Join(ErrCacheUnavailable, err)
	}

	var results azsearch.SearchResults
	if err := json.Unmarshal(raw, &results); err != nil {
		// A corrupt entry is as good as a miss; it will be overwritten.
		return nil, ErrCacheMiss
	}
	return &results, nil
}

// Set stores the results for the request under the configured TTL.
func (c *Cache) Set(ctx context.Context, index string, req azsearch.SearchRequest, results *azsearch.SearchResults) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, c.Key(index, req), raw, c.ttl).Err(); err != nil {
		return errors.Join(ErrCacheUnavailable, err)
	}
	return nil
}

// escapeMatch neutralizes glob metacharacters for a SCAN MATCH pattern so a
// literal prefix or index name cannot over-match other entries.
func escapeMatch(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '^', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Invalidate drops every cached result page for the given index. Call it
// after uploading, merging or deleting documents.
func (c *Cache) Invalidate(ctx context.Context, index string) error {
	pattern := escapeMatch(c.prefix+":"+index) + ":*"

	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return errors.Join(ErrCacheUnavailable, err)
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return errors.Join(ErrCacheUnavailable, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Search reads through the cache: a hit is served from Redis, a miss is
// fetched from the service and stored. Cache unavailability degrades to a
// plain service query rather than failing the search.
func (c *Cache) Search(ctx context.Context, s Searcher, req azsearch.SearchRequest) (*azsearch.SearchResults, error) {
	index := s.IndexName()

	if cached, err := c.Get(ctx, index, req); err == nil {
		return cached, nil
	}

	results, err := s.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	// Best effort; a write failure must not fail the search.
	_ = c.Set(ctx, index, req, results)

	return results, nil
}
