// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DefaultBaseURL is the backend address used when neither the
// TALLER_API_URL environment variable nor the config file provides one.
const DefaultBaseURL = "http://localhost:8080/api"

// maxResponseSize bounds response body reads: 32 MB. Resource lists are
// orders of magnitude smaller; this only guards against a misbehaving
// server exhausting memory.
const maxResponseSize int64 = 32 << 20

// ResolveBaseURL resolves the backend base URL once at startup:
// TALLER_API_URL environment variable, then the configured value, then
// DefaultBaseURL. Trailing slashes are stripped so request URLs can be
// built by concatenation.
func ResolveBaseURL(configured string) string {
	if env := os.Getenv("TALLER_API_URL"); env != "" {
		return strings.TrimRight(env, "/")
	}
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	return DefaultBaseURL
}

// RequestHook runs before dispatch and may mutate the outgoing request.
type RequestHook func(request *http.Request)

// ResponseHook runs after every dispatch with the response (nil when no
// response was received) and the classified error (nil on success).
// Hooks observe; they cannot recover or swallow the error — the
// original rejection always propagates to the caller.
type ResponseHook func(response *http.Response, err error)

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the backend base URL (e.g., "http://localhost:8080/api").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default().
	Logger *slog.Logger
}

// Client is the configured HTTP client for the workshop backend. All
// resource calls go through it; the hook chains make the credential
// and expiry policy uniform and independently testable.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	logger        *slog.Logger
	requestHooks  []RequestHook
	responseHooks []ResponseHook
}

// NewClient creates a Client. The base URL is validated here, once;
// request URLs are later built by string concatenation.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// OnRequest appends a request hook. Hooks run in registration order.
func (c *Client) OnRequest(hook RequestHook) {
	c.requestHooks = append(c.requestHooks, hook)
}

// OnResponse appends a response hook. Hooks run in registration order.
func (c *Client) OnResponse(hook ResponseHook) {
	c.responseHooks = append(c.responseHooks, hook)
}

// Do executes a request against the backend and decodes the JSON
// response into result (pass nil to discard the body). body is
// JSON-encoded when non-nil. On failure the returned error carries a
// *APIError for server rejections or wraps ErrUnavailable for
// transport failures.
func (c *Client) Do(ctx context.Context, method, path string, body any, result any) error {
	return c.do(ctx, method, path, body, result, false)
}

// Get issues an authenticated GET and decodes into result.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// Post issues a POST with a JSON body and decodes into result.
func (c *Client) Post(ctx context.Context, path string, body any, result any) error {
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// Put issues a PUT with a JSON body and decodes into result.
func (c *Client) Put(ctx context.Context, path string, body any, result any) error {
	return c.Do(ctx, http.MethodPut, path, body, result)
}

// Delete issues a DELETE, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// do is the single dispatch path. loginCall marks the credentials
// check from the login endpoint: its 401s classify as
// ErrCredentialsRejected instead of ErrSessionExpired, so the expiry
// hook (which reacts to the latter only) never fires for a wrong
// password.
func (c *Client) do(ctx context.Context, method, path string, requestBody any, result any, loginCall bool) error {
	requestURL := c.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}

	// Every request carries the JSON content type (spec'd backend
	// contract), even bodyless ones.
	request.Header.Set("Content-Type", "application/json")

	for _, hook := range c.requestHooks {
		hook(request)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		failure := fmt.Errorf("api: %s %s: %w: %w", method, path, ErrUnavailable, err)
		c.runResponseHooks(nil, failure)
		return failure
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		failure := fmt.Errorf("api: %s %s: reading response: %w", method, path, err)
		c.runResponseHooks(response, failure)
		return failure
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		c.runResponseHooks(response, nil)
		if result != nil && len(responseBody) > 0 {
			if err := json.Unmarshal(responseBody, result); err != nil {
				return fmt.Errorf("api: %s %s: decoding response: %w", method, path, err)
			}
		}
		return nil
	}

	apiErr := classify(response, responseBody, loginCall)
	c.logger.Debug("request failed",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"message", apiErr.Message,
	)
	c.runResponseHooks(response, apiErr)
	return apiErr
}

// runResponseHooks invokes the response hook chain in order. Hooks run
// for every outcome; the error (if any) is returned to the caller
// unmodified afterwards.
func (c *Client) runResponseHooks(response *http.Response, err error) {
	for _, hook := range c.responseHooks {
		hook(response, err)
	}
}

// classify builds the *APIError for a non-2xx response, assigning the
// failure kind for 401s. Non-JSON error bodies are tolerated — the
// status line alone still identifies the failure.
func classify(response *http.Response, body []byte, loginCall bool) *APIError {
	apiErr := &APIError{
		StatusCode: response.StatusCode,
		Status:     response.Status,
	}

	var payload errorPayload
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Message = payload.message()
	}

	if response.StatusCode == http.StatusUnauthorized {
		if loginCall {
			apiErr.kind = ErrCredentialsRejected
		} else {
			apiErr.kind = ErrSessionExpired
		}
	}

	return apiErr
}
