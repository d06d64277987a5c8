// Package library holds the catalog domain: the Book record, its JSON
// codec, and the Repository implementing the CRUD operations on top of a
// store.IStore.
//
// Storage layout:
//
//	record:<id>   -> JSON-encoded Book (opaque string value)
//	records:ids   -> set of every stored record id
//
// The index set exists because the store cannot enumerate keys by value
// pattern; it is maintained best-effort alongside the record keys (no
// transaction spans the two writes). Records are located by the trailing
// characters of their id, the same fragment the UI displays.
package library
