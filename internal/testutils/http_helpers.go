package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/signup-api/internal/api/shared"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ExecuteJSONRequest sends body as-is with a JSON content type, so malformed
// payloads can be sent too. The response body is closed on cleanup.
func ExecuteJSONRequest(
	t *testing.T,
	server *httptest.Server,
	method, path, body string,
) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err, "Failed to create request")
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	CleanupResponseBody(t, resp)

	return resp
}

// AssertErrorResponse checks that a response carries an error envelope with the
// expected status code and exact message, and returns the decoded envelope.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedMessage string,
) shared.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp),
		"Failed to unmarshal error response: %s", string(body))

	assert.Equal(t, expectedMessage, errResp.Error)
	return errResp
}

// AssertJSONResponse checks the status code and decodes the body into v.
func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, v interface{}) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v), "Failed to decode response body")
}
