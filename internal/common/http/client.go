// internal/common/http/client.go
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	apperrors "agent-relay/internal/common/errors"
)

// StatusError is returned when the remote service answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Code       apperrors.ErrorCode
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP error occurred: %d from %s: %s", e.StatusCode, e.URL, e.Detail)
	}
	return fmt.Sprintf("HTTP error occurred: %d from %s", e.StatusCode, e.URL)
}

// Client is a JSON-over-HTTP client. Each Client owns its transport so Close
// releases only its own connections.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}

// GetJSON issues a GET and decodes the JSON reply into out.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.roundTrip(req, out)
}

// PostJSON encodes in as the request body and decodes the JSON reply into out.
func (c *Client) PostJSON(ctx context.Context, url string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.roundTrip(req, out)
}

// Close drops idle connections held by this client's transport.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) roundTrip(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if id := middleware.GetReqID(req.Context()); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP error occurred: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", req.URL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(req.URL.String(), resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL, err)
	}
	return nil
}

func newStatusError(url string, status int, body []byte) *StatusError {
	statusErr := &StatusError{
		URL:        url,
		StatusCode: status,
		Code:       apperrors.CodeForStatus(status),
	}

	var errBody apperrors.ErrorBody
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Detail != "" {
		statusErr.Detail = errBody.Detail
		if errBody.Code != "" {
			statusErr.Code = errBody.Code
		}
	} else if len(body) > 0 {
		statusErr.Detail = string(bytes.TrimSpace(body))
	}
	return statusErr
}
