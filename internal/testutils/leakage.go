package testutils

import "strings"

// TestingT is the subset of *testing.T used by the leakage assertions.
type TestingT interface {
	Helper()
	Errorf(format string, args ...interface{})
}

// sensitiveTerms must never reach a client in a server error message.
var sensitiveTerms = []string{
	// Go runtime
	"panic", "goroutine", "runtime error", ".go:",

	// Wrapped collaborator failures
	"failed to check email", "failed to validate email", "email validator",

	// Request values
	"@",
}

// AssertNoErrorLeakage fails t if msg contains any internal detail.
func AssertNoErrorLeakage(t TestingT, msg string) {
	t.Helper()

	lower := strings.ToLower(msg)
	for _, term := range sensitiveTerms {
		if strings.Contains(lower, term) {
			t.Errorf("Error message leaks internal detail: %q. Full message: %q", term, msg)
		}
	}
}
