package store_test

import (
	"testing"

	"github.com/arcmesh/meshgraph/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertAtAndGet(t *testing.T) {
	s := store.New[string, int]()

	require.True(t, s.InsertAt("a", 1))
	require.False(t, s.InsertAt("a", 2), "re-inserting a live key must fail")

	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStoreRemoveTombstones(t *testing.T) {
	s := store.New[string, int]()
	s.InsertAt("a", 1)

	v, ok := s.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = s.Remove("a")
	assert.False(t, ok, "removing an already-removed key reports absence")

	assert.False(t, s.Contains("a"))

	// A tombstoned key may be reinserted explicitly (Store itself does not
	// forbid key reuse; only AutoKeyStore guarantees never reusing a key).
	assert.True(t, s.InsertAt("a", 2))
}

func TestStoreKeysStableInsertionOrder(t *testing.T) {
	s := store.New[int, string]()
	s.InsertAt(3, "c")
	s.InsertAt(1, "a")
	s.InsertAt(2, "b")

	assert.Equal(t, []int{3, 1, 2}, s.Keys())

	s.Remove(1)
	assert.Equal(t, []int{3, 2}, s.Keys(), "removal does not disturb the relative order of survivors")

	s.InsertAt(1, "a2")
	assert.Equal(t, []int{3, 2, 1}, s.Keys(), "reinsertion appends at the end, it does not restore the old position")
}

func TestStoreEntriesMatchesKeys(t *testing.T) {
	s := store.New[int, string]()
	s.InsertAt(1, "a")
	s.InsertAt(2, "b")

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, store.Entry[int, string]{Key: 1, Value: "a"}, entries[0])
	assert.Equal(t, store.Entry[int, string]{Key: 2, Value: "b"}, entries[1])
}

func TestAutoKeyStoreNeverReusesOrIssuesNilKey(t *testing.T) {
	s := store.NewAutoKeyStore[string]()

	k1 := s.Insert("a")
	k2 := s.Insert("b")
	require.NotEqual(t, store.NilKey, k1)
	require.NotEqual(t, store.NilKey, k2)
	require.NotEqual(t, k1, k2)

	s.Remove(k1)
	k3 := s.Insert("c")
	assert.NotEqual(t, k1, k3, "a removed key must never be reissued")
}

func TestStoreLen(t *testing.T) {
	s := store.New[int, int]()
	assert.Equal(t, 0, s.Len())
	s.InsertAt(1, 1)
	s.InsertAt(2, 2)
	assert.Equal(t, 2, s.Len())
	s.Remove(1)
	assert.Equal(t, 1, s.Len())
}
