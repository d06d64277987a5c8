// Package redisstore implements the store.IStore interface on top of a
// Redis or KeyDB server using the go-redis client.
//
// Connect performs a single fail-fast liveness check: the connection is
// verified with PING inside the configured timeout and an error is
// returned immediately on failure. There is deliberately no retry or
// backoff (see the application's startup contract).
//
// Mapping to Redis commands:
//
//   - Get/Set     -> GET / SET (values are opaque strings)
//   - MGet        -> MGET (missing keys come back as nil slots)
//   - Delete      -> DEL (returns the number of keys that existed)
//   - SAdd/SRem   -> SADD / SREM
//   - SMembers    -> SMEMBERS (unordered)
package redisstore
