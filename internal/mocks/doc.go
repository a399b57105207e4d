// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the application,
// so tests share one set of doubles instead of defining inline mocks per file.
//
// Usage:
//
//	import "github.com/phrazzld/signup-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    emailValidator := &mocks.MockEmailValidator{
//	        IsValidFn: func(email string) (bool, error) {
//	            return false, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Record calls behind a mutex so handlers under test may run concurrently
package mocks
