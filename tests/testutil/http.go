// Package testutil provides common test utilities for the RetailOps backend.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response envelope for assertions. Data stays
// raw so callers decode it into whatever DTO the route returns.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *EnvelopeError  `json:"error"`
	Meta    *EnvelopeMeta   `json:"meta"`
}

// EnvelopeError is the error half of the envelope.
type EnvelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EnvelopeMeta carries list metadata.
type EnvelopeMeta struct {
	Total int64 `json:"total"`
}

// PerformJSON routes a request through the engine and returns the
// recorder. A non-nil body is marshaled to JSON.
func PerformJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// PerformRawJSON is PerformJSON for a pre-encoded payload, for tests
// that send deliberately malformed bodies.
func PerformRawJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// DecodeEnvelope parses the recorded response body into an Envelope.
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to parse response envelope")
	return env
}

// DecodeData parses the envelope's data payload into out.
func DecodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	env := DecodeEnvelope(t, w)
	require.NotNil(t, env.Data, "Response carries no data payload")
	require.NoError(t, json.Unmarshal(env.Data, out), "Failed to parse data payload")
}

// RequireSuccess asserts the status code and a successful envelope.
func RequireSuccess(t *testing.T, w *httptest.ResponseRecorder, wantStatus int) Envelope {
	t.Helper()

	require.Equal(t, wantStatus, w.Code, "Unexpected status code")
	env := DecodeEnvelope(t, w)
	assert.True(t, env.Success, "Expected success envelope")
	assert.Nil(t, env.Error, "Expected no error in envelope")
	return env
}

// RequireErrorCode asserts the status code and the envelope error code.
func RequireErrorCode(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()

	require.Equal(t, wantStatus, w.Code, "Unexpected status code")
	env := DecodeEnvelope(t, w)
	assert.False(t, env.Success, "Expected error envelope")
	require.NotNil(t, env.Error, "Expected error object in envelope")
	assert.Equal(t, wantCode, env.Error.Code, "Unexpected error code")
}
