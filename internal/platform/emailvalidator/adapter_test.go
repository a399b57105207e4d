package emailvalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterIsValid(t *testing.T) {
	t.Parallel()

	adapter := New()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "plain address", email: "any_email@mail.com", want: true},
		{name: "subdomain and plus tag", email: "first.last+tag@mx.example.org", want: true},
		{name: "missing at sign", email: "invalid_email.com", want: false},
		{name: "missing local part", email: "@mail.com", want: false},
		{name: "missing domain", email: "user@", want: false},
		{name: "embedded space", email: "any email@mail.com", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := adapter.IsValid(tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
