package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	httpclient "github.com/piresc/wakestop/internal/pkg/http"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCallBackendGW(t *testing.T, handler http.HandlerFunc) *CallBackendGW {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewCallBackendGW(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}))
}

func TestPlaceCall_Success(t *testing.T) {
	gw := newCallBackendGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/calls", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"queued","call_id":"CA123"}`))
	})

	result, err := gw.PlaceCall(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, "queued", result.Result)
	assert.Equal(t, "CA123", result.CallID)
}

func TestPlaceCall_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		kind     models.CallErrorKind
		contains string
	}{
		{
			name:     "unauthenticated",
			status:   http.StatusUnauthorized,
			body:     `{"success":false,"error":"invalid token","code":401,"status":"unauthenticated"}`,
			kind:     models.CallErrUnauthenticated,
			contains: "invalid token",
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"success":false,"error":"no phone number","code":404,"status":"not-found"}`,
			kind:     models.CallErrNotFound,
			contains: "no phone number",
		},
		{
			name:     "debounced",
			status:   http.StatusTooManyRequests,
			body:     `{"success":false,"error":"call in progress","code":429,"status":"resource-exhausted"}`,
			kind:     models.CallErrResourceExhausted,
			contains: "call in progress",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `provider down`,
			kind:     models.CallErrInternal,
			contains: "provider down",
		},
		{
			name:     "unexpected status",
			status:   http.StatusTeapot,
			body:     `nope`,
			kind:     models.CallErrInternal,
			contains: "nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newCallBackendGW(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.PlaceCall(context.Background(), "token-1")
			require.Error(t, err)
			var ce *models.CallError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.kind, ce.Kind)
			assert.Contains(t, ce.Message, tt.contains)
		})
	}
}

func TestPlaceCall_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	gw := NewCallBackendGW(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}))
	server.Close()

	_, err := gw.PlaceCall(context.Background(), "token-1")
	assert.Equal(t, models.CallErrInternal, models.CallErrorKindOf(err))
}

func TestPlaceCall_MalformedBody(t *testing.T) {
	gw := newCallBackendGW(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := gw.PlaceCall(context.Background(), "token-1")
	assert.Equal(t, models.CallErrInternal, models.CallErrorKindOf(err))
}
