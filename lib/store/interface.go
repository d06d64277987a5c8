package store

import (
	"context"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IStore is the generic interface for the key-value primitives the
// application needs: string get/set, multi-get, counted delete and
// set-membership operations, plus a liveness check.
//
// All blocking methods take a context. Implementations must be usable
// from a single goroutine; whether concurrent callers are supported is
// implementation-defined.
type IStore interface {
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
	// Get returns the value stored under key. The boolean return value
	// indicates whether a value for the key was found.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set inserts or updates a key-value pair.
	Set(ctx context.Context, key string, value []byte) error
	// MGet returns the values for the given keys in request order.
	// A nil slot marks a key with no stored value.
	MGet(ctx context.Context, keys ...string) (values [][]byte, err error)
	// Delete removes the given keys and returns how many of them existed.
	Delete(ctx context.Context, keys ...string) (removed int64, err error)
	// SAdd adds the given members to the set stored under key, creating
	// the set if it does not exist.
	SAdd(ctx context.Context, key string, members ...string) error
	// SRem removes the given members from the set stored under key.
	// Removing from a missing set is a no-op.
	SRem(ctx context.Context, key string, members ...string) error
	// SMembers returns all members of the set stored under key in
	// unspecified order. A missing set yields an empty slice.
	SMembers(ctx context.Context, key string) (members []string, err error)
	// Close releases the underlying connection or storage.
	Close() error
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// Config holds the connection parameters for a remote store backend.
type Config struct {
	Host           string
	Port           int
	DB             int
	TimeoutSeconds int
}
