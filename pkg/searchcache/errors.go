package searchcache

import "errors"

var (
	// ErrCacheMiss indicates no valid entry exists for the request.
	ErrCacheMiss = errors.New("search cache miss")

	// ErrCacheUnavailable indicates Redis rejected or failed the operation.
	ErrCacheUnavailable = errors.New("search cache unavailable")

	// ErrNilRedisClient is returned by New when no Redis client is provided.
	ErrNilRedisClient = errors.New("nil redis client provided to search cache")
)
