// Package testing provides a reusable conformance test suite for
// store.IStore implementations. Each backend package runs the suite from
// its own test file by passing a factory:
//
//	func Test(t *testing.T) {
//		storetesting.RunStoreTests(t, "MemStore", func() store.IStore {
//			return memstore.New()
//		})
//	}
package testing
