package shared

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
		want        payload
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "any_name", "email": "any_email@mail.com"}`,
			want:        payload{Name: "any_name", Email: "any_email@mail.com"},
		},
		{
			name:        "null fields decode to empty strings",
			requestBody: `{"name": null}`,
			want:        payload{},
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "test",}`, // trailing comma
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			errContains: "EOF",
		},
		{
			name:        "wrong field type",
			requestBody: `{"name": 42}`,
			wantErr:     true,
			errContains: "cannot unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))
			w := httptest.NewRecorder()

			var got payload
			err := DecodeJSON(w, req, &got)

			if tc.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type errorReader struct{}

func (er errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})
	w := httptest.NewRecorder()

	var target struct{}
	err := DecodeJSON(w, req, &target)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestDecodeJSONRejectsOversizedBody(t *testing.T) {
	big := `{"name": "` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(big))
	w := httptest.NewRecorder()

	var target struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(w, req, &target)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, err, &maxErr)
}
