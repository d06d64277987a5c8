// Package memstore implements a local, in-memory store based on the
// store.IStore interface. String values and id sets are held in concurrent
// maps; nothing is persisted between process restarts.
//
// The implementation mirrors the contract of the Redis backend closely
// enough that the repository tests and the menu tests can run against it
// without a server: Get/Set copy values on the way in and out so callers
// never alias internal buffers, Delete reports how many keys existed, and
// SMembers enumerates in unspecified order.
package memstore
