package store

import (
	"testing"

	"src.prismdeck.dev/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file. The store is closed
// when the test finishes.
func MustTempStore(t testing.TB) DBStore {
	st, err := NewStore(testutil.TempFile(t, "db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
