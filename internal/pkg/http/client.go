package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/wakestop/internal/pkg/circuitbreaker"
	nrpkg "github.com/piresc/wakestop/internal/pkg/newrelic"
)

const maxErrorBody = 512

// Config configures a service client
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Breaker, when set, guards every request. Only 5xx responses and transport
	// errors count as failures.
	Breaker *circuitbreaker.CircuitBreaker
}

// Client is a generic HTTP client for communicating with services
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
	basicUser  string
	basicPass  string
}

// HTTPError is a non-2xx response whose body has already been consumed
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		breaker: config.Breaker,
	}
}

// SetBasicAuth sends HTTP basic credentials with every request
func (c *Client) SetBasicAuth(user, pass string) {
	c.basicUser = user
	c.basicPass = pass
}

// BaseURL returns the normalised base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PostJSON posts body as JSON to path
func (c *Client) PostJSON(ctx context.Context, path string, body interface{}, headers map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, reader, headers)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.Do(ctx, req)
}

// PostForm posts form values url-encoded to path
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, headers map[string]string) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), headers)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.Do(ctx, req)
}

// Get performs a GET request against path
func (c *Client) Get(ctx context.Context, path string, headers map[string]string) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, headers)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// Do executes req inside a New Relic external segment, through the breaker when one
// is configured. A 5xx response is returned as *HTTPError with the body closed.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	call := func(ctx context.Context) error {
		r, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
			return c.httpClient.Do(req.WithContext(ctx))
		})
		if err != nil {
			return err
		}
		if r.StatusCode >= http.StatusInternalServerError {
			defer r.Body.Close()
			msg, _ := io.ReadAll(io.LimitReader(r.Body, maxErrorBody))
			return &HTTPError{StatusCode: r.StatusCode, Message: strings.TrimSpace(string(msg))}
		}
		resp = r
		return nil
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ReadError drains a non-2xx response into an *HTTPError
func ReadError(resp *http.Response) *HTTPError {
	defer resp.Body.Close()
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.basicUser != "" {
		req.SetBasicAuth(c.basicUser, c.basicPass)
	}
	return req, nil
}
