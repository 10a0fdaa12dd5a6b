// Package redis provides a thin wrapper around github.com/redis/go-redis/v9
// adding type-safe environment configuration, a bounded retry connection
// loop, and a healthcheck closure for readiness probes.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // errors.Is(err, redis.ErrNotReady)
//	}
//
// The resulting *redis.Client backs the searchcache package's query result
// cache.
package redis
