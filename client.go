package xendit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
)

// Requester is the transport surface the services call through. It is
// implemented by *Client; tests can substitute a recording fake via
// NewWithRequester.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, headers map[string]string) (map[string]any, error)
	Post(ctx context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error)
	Patch(ctx context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error)
	Put(ctx context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error)
	Delete(ctx context.Context, path string, query url.Values, headers map[string]string) (map[string]any, error)
}

// Client performs authenticated HTTP calls against the Xendit API and maps
// response statuses onto the error taxonomy. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a transport client from cfg. It fails with
// ErrConfiguration if the API key is empty; the check happens once here,
// before any network I/O.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, newError(ErrConfiguration, "API key is required")
	}
	cfg = cfg.withDefaults()

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext:         dialer.DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, headers map[string]string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, path, nil, query, headers)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error) {
	return c.do(ctx, http.MethodPost, path, body, nil, headers)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error) {
	return c.do(ctx, http.MethodPatch, path, body, nil, headers)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error) {
	return c.do(ctx, http.MethodPut, path, body, nil, headers)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, headers map[string]string) (map[string]any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, query, headers)
}

// do executes exactly one HTTP call. A 2xx response yields the decoded JSON
// body; anything else yields a typed *Error.
func (c *Client) do(ctx context.Context, method, path string, body map[string]any, query url.Values, headers map[string]string) (map[string]any, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp.StatusCode, data)
	}

	if len(data) == 0 {
		return map[string]any{}, nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return decoded, nil
}

// classifyTransportError maps network-level failures: timeouts to ErrTimeout,
// everything else to ErrConnection.
func classifyTransportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(ErrTimeout, "Request timeout")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(ErrTimeout, "Request timeout")
	}
	return newError(ErrConnection, "Connection failed")
}

// classifyStatus maps a non-2xx response onto the error taxonomy. 400
// responses sub-dispatch on the vendor error_code field.
func classifyStatus(status int, body []byte) *Error {
	var decoded map[string]any
	if len(body) > 0 {
		// Non-JSON bodies leave decoded nil; message falls back to the
		// status text.
		_ = json.Unmarshal(body, &decoded)
	}

	switch {
	case status == http.StatusBadRequest:
		code, _ := decoded["error_code"].(string)
		kind, ok := errorCodeKinds[code]
		if !ok {
			kind = ErrBadRequest
		}
		return &Error{Kind: kind, Status: status, Code: code, Message: extractMessage(decoded, status)}
	case status == http.StatusUnauthorized:
		return &Error{Kind: ErrAuthentication, Status: status, Message: extractMessage(decoded, status)}
	case status == http.StatusForbidden:
		return &Error{Kind: ErrForbidden, Status: status, Message: extractMessage(decoded, status)}
	case status == http.StatusNotFound:
		return &Error{Kind: ErrNotFound, Status: status, Message: extractMessage(decoded, status)}
	case status == http.StatusConflict:
		return &Error{Kind: ErrConflict, Status: status, Message: extractMessage(decoded, status)}
	case status == http.StatusTooManyRequests:
		return &Error{Kind: ErrRateLimit, Status: status, Message: "Rate limit exceeded"}
	case status >= 500 && status <= 599:
		return &Error{Kind: ErrServer, Status: status, Message: "Internal server error"}
	default:
		return &Error{Kind: ErrAPI, Status: status, Message: fmt.Sprintf("Unexpected response status: %d", status)}
	}
}

// extractMessage pulls a human-readable message from a decoded error body,
// preferring message, then error_code, then the HTTP status text.
func extractMessage(decoded map[string]any, status int) string {
	if decoded != nil {
		if msg, ok := decoded["message"].(string); ok && msg != "" {
			return msg
		}
		if code, ok := decoded["error_code"].(string); ok && code != "" {
			return code
		}
	}
	return http.StatusText(status)
}
