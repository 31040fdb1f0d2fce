package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIdempotent(t *testing.T) {
	// Register same name twice
	id1 := Register("TEST_IDEMPOTENT", "t-idem")
	id2 := Register("TEST_IDEMPOTENT", "t-idem")

	assert.Equal(t, id1, id2, "same name should return same ID")
}

func TestRegisterDifferentNames(t *testing.T) {
	id1 := Register("TEST_NAME_A", "t-a")
	id2 := Register("TEST_NAME_B", "t-b")

	assert.NotEqual(t, id1, id2, "different names should return different IDs")
	assert.True(t, id1.IsValid())
	assert.True(t, id2.IsValid())
}

func TestRegisterDuplicateAbbreviationPanics(t *testing.T) {
	Register("TEST_ABBR_OWNER", "t-owner")

	assert.Panics(t, func() {
		Register("TEST_ABBR_THIEF", "t-owner")
	})
}

func TestRegisterConcurrent(t *testing.T) {
	const numGoroutines = 100
	var wg sync.WaitGroup
	ids := make([]Type, numGoroutines)

	// Register same name concurrently
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx] = Register("TEST_CONCURRENT", "t-conc")
		}(i)
	}
	wg.Wait()

	// All should have the same ID
	for i := 1; i < numGoroutines; i++ {
		require.Equal(t, ids[0], ids[i], "concurrent registration should return same ID")
	}
}

func TestLookup(t *testing.T) {
	expectedID := Register("TEST_LOOKUP", "t-look")

	gotID, ok := LookupName("TEST_LOOKUP")
	require.True(t, ok, "registered name should be found")
	assert.Equal(t, expectedID, gotID)

	gotID, ok = LookupAbbreviation("t-look")
	require.True(t, ok, "registered abbreviation should be found")
	assert.Equal(t, expectedID, gotID)

	gotID, ok = Lookup("t-look")
	require.True(t, ok)
	assert.Equal(t, expectedID, gotID)

	_, ok = LookupName("NONEXISTENT_KIND_12345")
	assert.False(t, ok, "unregistered name should not be found")
}

func TestTypeNames(t *testing.T) {
	id := Register("TEST_TYPE_NAMES", "t-names")

	assert.Equal(t, "TEST_TYPE_NAMES", id.Name())
	assert.Equal(t, "t-names", id.Abbreviation())
	assert.Equal(t, "TEST_TYPE_NAMES", id.String())

	assert.False(t, Invalid.IsValid())
	assert.Equal(t, "TOKEN(0)", Invalid.Name())
	assert.Equal(t, "TOKEN(99999)", Type(99999).String())
	assert.Equal(t, "?", Type(99999).Abbreviation())
}

func TestRegistered(t *testing.T) {
	name := "TEST_REGISTERED_TOKENS"
	id := Register(name, "t-reg")

	tokens := Registered()
	assert.Equal(t, name, tokens[id])
	assert.NotContains(t, tokens, Invalid)

	// Verify it's a copy (modifications don't affect original)
	tokens[id] = "MODIFIED"
	tokens2 := Registered()
	assert.Equal(t, name, tokens2[id], "Registered should return a copy")
}
