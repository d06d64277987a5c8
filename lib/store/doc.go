// Package store defines the key-value abstraction the application is built
// on. It exposes a single interface (IStore) covering the small set of
// primitives the catalog needs: string get/set, batched multi-get, counted
// delete, and set-membership operations for maintaining the id index.
//
// Implementations:
//
//   - Redis Store (redisstore): The production backend, a thin adapter over
//     a Redis/KeyDB connection. Available in the
//     "github.com/shelfkv/shelf/lib/store/redisstore" package.
//
//   - Memory Store (memstore): A process-local implementation backed by
//     concurrent maps, used by the test suites and as a scratch backend.
//     Available in the "github.com/shelfkv/shelf/lib/store/memstore" package.
//
// Both implementations are exercised by the shared conformance suite in
// "github.com/shelfkv/shelf/lib/store/testing". This interface-driven
// approach keeps the repository and menu layers independent of the
// concrete backend.
package store
