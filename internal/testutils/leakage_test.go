package testutils_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/testutils"
)

type recordingT struct {
	failures []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertNoErrorLeakage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		msg      string
		wantFail bool
	}{
		{name: "generic server error", msg: domain.ServerErrorMessage, wantFail: false},
		{name: "missing param", msg: "Missing param: email", wantFail: false},
		{name: "panic text", msg: "email validator panicked: boom", wantFail: true},
		{name: "wrapped cause", msg: "failed to check email: timeout", wantFail: true},
		{name: "echoed address", msg: "bad address any_email@mail.com", wantFail: true},
		{name: "source location", msg: "adapter.go:42", wantFail: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingT{}
			testutils.AssertNoErrorLeakage(rec, tt.msg)
			assert.Equal(t, tt.wantFail, len(rec.failures) > 0, "failures: %v", rec.failures)
		})
	}
}
