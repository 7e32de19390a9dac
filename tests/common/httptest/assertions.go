//go:build unit

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error json.RawMessage `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg == "" {
		return
	}

	// Handlers emit a flat {"error": "..."} body; middleware rejections carry
	// the httperr envelope {"error": {"message": "..."}}.
	var flat string
	if json.Unmarshal(errorResponse.Error, &flat) != nil {
		var envelope struct {
			Message string `json:"message"`
		}
		assert.NoError(t, json.Unmarshal(errorResponse.Error, &envelope),
			fmt.Sprintf("Failed to decode error envelope: %s", w.Body.String()))
		flat = envelope.Message
	}
	assert.Contains(t, flat, expectedErrorMsg,
		"Response error message doesn't contain expected text")
}
