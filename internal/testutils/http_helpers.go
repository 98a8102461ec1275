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

	"github.com/chartadvisor/chart-advisor/internal/api/shared"
)

// CreateTestServer creates a httptest server with the given handler.
// Cleanup is registered via t.Cleanup so callers don't need to close it.
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

// ExecuteRequest sends a request with a raw body to server and registers
// cleanup for the response body.
func ExecuteRequest(t *testing.T, server *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err, "Failed to create request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	CleanupResponseBody(t, resp)

	return resp
}

// ExecuteJSONRequest marshals body and POSTs it to path.
func ExecuteJSONRequest(t *testing.T, server *httptest.Server, path string, body interface{}) *http.Response {
	t.Helper()

	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err, "Failed to marshal request body")

	return ExecuteRequest(t, server, http.MethodPost, path, string(bodyBytes))
}

// ReadBody reads the whole response body as a string.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return string(body)
}

// AssertErrorResponse checks that a response carries the expected status
// and exactly the expected error message, and returns the decoded body.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsg string,
) shared.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	body := ReadBody(t, resp)

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp),
		"Failed to unmarshal error response: %s", body)

	assert.Equal(t, expectedErrorMsg, errResp.Error)
	return errResp
}
