// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields for its interface methods, default return
// values used when no function is set, and call tracking for verification.
//
// Usage:
//
//	import "github.com/phrazzld/memofiche-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gen := mocks.NewMockGeneratorWithText("# Fiche")
//
//	    // Use the mock in your test...
//
//	    assert.Equal(t, 1, gen.GenerateCalls.Count)
//	}
package mocks
