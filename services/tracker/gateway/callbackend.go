package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	httpclient "github.com/piresc/wakestop/internal/pkg/http"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/internal/utils"
)

const placeCallPath = "/v1/calls"

// CallBackendGW places wake-up calls through the call backend HTTP API
type CallBackendGW struct {
	client *httpclient.Client
}

// NewCallBackendGW creates a new call backend gateway
func NewCallBackendGW(client *httpclient.Client) *CallBackendGW {
	return &CallBackendGW{client: client}
}

// PlaceCall asks the backend to call the traveler identified by userToken.
// Failures are returned as *models.CallError.
func (g *CallBackendGW) PlaceCall(ctx context.Context, userToken string) (models.CallResult, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + userToken,
	}

	resp, err := g.client.PostJSON(ctx, placeCallPath, struct{}{}, headers)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			return models.CallResult{}, models.NewCallError(models.CallErrInternal, httpErr.Message)
		}
		return models.CallResult{}, models.NewCallError(models.CallErrInternal, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return models.CallResult{}, callErrorFromResponse(httpclient.ReadError(resp))
	}
	defer resp.Body.Close()

	var result models.CallResult
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.CallResult{}, models.NewCallError(models.CallErrInternal, fmt.Sprintf("failed to read response: %v", err))
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return models.CallResult{}, models.NewCallError(models.CallErrInternal, fmt.Sprintf("failed to decode response: %v", err))
	}
	return result, nil
}

func callErrorFromResponse(httpErr *httpclient.HTTPError) *models.CallError {
	msg := httpErr.Message
	var body utils.ErrorResponse
	if json.Unmarshal([]byte(httpErr.Message), &body) == nil && body.Error != "" {
		msg = body.Error
	}

	switch httpErr.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.NewCallError(models.CallErrUnauthenticated, msg)
	case http.StatusNotFound:
		return models.NewCallError(models.CallErrNotFound, msg)
	case http.StatusTooManyRequests:
		return models.NewCallError(models.CallErrResourceExhausted, msg)
	default:
		return models.NewCallError(models.CallErrInternal, msg)
	}
}
