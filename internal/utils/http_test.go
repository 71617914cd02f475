package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusKind(t *testing.T) {
	tests := map[int]string{
		http.StatusBadRequest:          StatusInvalidArgument,
		http.StatusUnauthorized:        "unauthenticated",
		http.StatusForbidden:           "unauthenticated",
		http.StatusNotFound:            "not-found",
		http.StatusConflict:            StatusFailedPrecondition,
		http.StatusTooManyRequests:     "resource-exhausted",
		http.StatusInternalServerError: "internal",
		http.StatusBadGateway:          "internal",
	}
	for code, want := range tests {
		assert.Equal(t, want, StatusKind(code), "code %d", code)
	}
}

func TestErrorResponseHandler(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NotFoundResponse(c, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Resource not found", body.Error)
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, "not-found", body.Status)
}
