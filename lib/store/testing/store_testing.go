package testing

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/shelfkv/shelf/lib/store"
)

// StoreFactory is a function that creates a fresh instance of a store.IStore
// implementation for a single test.
type StoreFactory func() store.IStore

// RunStoreTests runs a conformance test suite against an IStore
// implementation. Every backend is expected to pass the full suite.
func RunStoreTests(t *testing.T, name string, factory StoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("MGet", func(t *testing.T) {
			testMGet(t, factory())
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, factory())
		})

		t.Run("SetMembership", func(t *testing.T) {
			testSetMembership(t, factory())
		})

		t.Run("EdgeCases", func(t *testing.T) {
			testEdgeCases(t, factory())
		})

		t.Run("RealisticUsage", func(t *testing.T) {
			testRealisticUsage(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, st store.IStore) {
	defer st.Close()
	ctx := context.Background()

	testKey := "test-key"
	testValue1 := []byte("test-value1")
	testValue2 := []byte("test-value2")

	if err := st.Set(ctx, testKey, testValue1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, found, err := st.Get(ctx, testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}
	if !bytes.Equal(result, testValue1) {
		t.Errorf("Expected value %s, got %s", testValue1, result)
	}

	if err := st.Set(ctx, testKey, testValue2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, found, err = st.Get(ctx, testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Errorf("Expected key %s to exist after overwrite", testKey)
	}
	if !bytes.Equal(result, testValue2) {
		t.Errorf("Expected value %s, got %s", testValue2, result)
	}

	_, found, err = st.Get(ctx, "nonexistent-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Errorf("Expected nonexistent key to return found=false")
	}

	// callers must never alias the stored buffer
	retrieved, _, _ := st.Get(ctx, testKey)
	retrieved[0] = 'X'
	again, _, _ := st.Get(ctx, testKey)
	if !bytes.Equal(again, testValue2) {
		t.Errorf("Mutating a returned value changed the stored value")
	}
}

func testMGet(t *testing.T, st store.IStore) {
	defer st.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("mget-key-%d", i)
		if err := st.Set(ctx, key, []byte(fmt.Sprintf("value-%d", i))); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	values, err := st.MGet(ctx, "mget-key-0", "missing", "mget-key-2")
	if err != nil {
		t.Fatalf("MGet failed: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("Expected 3 slots, got %d", len(values))
	}
	if !bytes.Equal(values[0], []byte("value-0")) {
		t.Errorf("Expected value-0 in slot 0, got %s", values[0])
	}
	if values[1] != nil {
		t.Errorf("Expected nil slot for missing key, got %s", values[1])
	}
	if !bytes.Equal(values[2], []byte("value-2")) {
		t.Errorf("Expected value-2 in slot 2, got %s", values[2])
	}
}

func testDelete(t *testing.T, st store.IStore) {
	defer st.Close()
	ctx := context.Background()

	if err := st.Set(ctx, "del-key", []byte("value")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	removed, err := st.Delete(ctx, "del-key")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected removed=1, got %d", removed)
	}

	_, found, _ := st.Get(ctx, "del-key")
	if found {
		t.Errorf("Expected key to be gone after Delete")
	}

	removed, err = st.Delete(ctx, "del-key")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected removed=0 for already deleted key, got %d", removed)
	}
}

func testSetMembership(t *testing.T, st store.IStore) {
	defer st.Close()
	ctx := context.Background()

	setKey := "ids"

	members, err := st.SMembers(ctx, setKey)
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("Expected empty set, got %d members", len(members))
	}

	if err := st.SAdd(ctx, setKey, "a", "b", "c"); err != nil {
		t.Fatalf("SAdd failed: %v", err)
	}
	// adding an existing member must not duplicate it
	if err := st.SAdd(ctx, setKey, "b"); err != nil {
		t.Fatalf("SAdd failed: %v", err)
	}

	members, err = st.SMembers(ctx, setKey)
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	sort.Strings(members)
	want := []string{"a", "b", "c"}
	if len(members) != len(want) {
		t.Fatalf("Expected members %v, got %v", want, members)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Errorf("Expected members %v, got %v", want, members)
			break
		}
	}

	if err := st.SRem(ctx, setKey, "b"); err != nil {
		t.Fatalf("SRem failed: %v", err)
	}
	members, _ = st.SMembers(ctx, setKey)
	for _, m := range members {
		if m == "b" {
			t.Errorf("Expected member b to be removed")
		}
	}

	// removing from a missing set is a no-op
	if err := st.SRem(ctx, "no-such-set", "x"); err != nil {
		t.Errorf("SRem on missing set failed: %v", err)
	}
}

func testEdgeCases(t *testing.T, st store.IStore) {
	defer st.Close()
	ctx := context.Background()

	// empty value round trip
	if err := st.Set(ctx, "empty", []byte{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found, err := st.Get(ctx, "empty")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Errorf("Expected empty value to be stored")
	}
	if len(val) != 0 {
		t.Errorf("Expected empty value, got %q", val)
	}

	// MGet with no keys
	values, err := st.MGet(ctx)
	if err != nil {
		t.Fatalf("MGet with no keys failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Expected no slots, got %d", len(values))
	}

	// Delete with no keys
	removed, err := st.Delete(ctx)
	if err != nil {
		t.Fatalf("Delete with no keys failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected removed=0, got %d", removed)
	}
}

func testRealisticUsage(t *testing.T, st store.IStore) {
	defer st.Close()
	ctx := context.Background()

	// simulate the catalog's access pattern: value write + index update,
	// enumeration via the set, batched read, then counted delete + SRem
	const n = 20
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("id-%04d", i)
		if err := st.Set(ctx, "record:"+id, []byte(fmt.Sprintf(`{"n":%d}`, i))); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := st.SAdd(ctx, "records:ids", id); err != nil {
			t.Fatalf("SAdd failed: %v", err)
		}
	}

	ids, err := st.SMembers(ctx, "records:ids")
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	if len(ids) != n {
		t.Fatalf("Expected %d ids, got %d", n, len(ids))
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = "record:" + id
	}
	values, err := st.MGet(ctx, keys...)
	if err != nil {
		t.Fatalf("MGet failed: %v", err)
	}
	for i, v := range values {
		if v == nil {
			t.Errorf("Expected value for key %s", keys[i])
		}
	}

	removed, err := st.Delete(ctx, "record:id-0000")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("Expected removed=1, got %d", removed)
	}
	if err := st.SRem(ctx, "records:ids", "id-0000"); err != nil {
		t.Fatalf("SRem failed: %v", err)
	}
	ids, _ = st.SMembers(ctx, "records:ids")
	if len(ids) != n-1 {
		t.Errorf("Expected %d ids after delete, got %d", n-1, len(ids))
	}
}
