package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/newrelic/go-agent/v3/newrelic"

	"busriya/internal/backend"
)

// fallbackMessage is surfaced when a backend error response carries no
// structured body.
const fallbackMessage = "An unexpected error occurred."

// Client is the shared HTTP plumbing for one backend service. It
// attaches bearer tokens carried on the request context, decodes the
// services' {error}/{message} error shapes, and records New Relic
// external segments when a transaction is on the context.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// errorBody matches the error shapes the backends respond with.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do issues one request. body is JSON-encoded when non-nil; out is
// JSON-decoded from the response when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := backend.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Record the call as an external segment when instrumented.
	if txn := newrelic.FromContext(ctx); txn != nil {
		seg := newrelic.StartExternalSegment(txn, req)
		defer seg.End()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeError turns a non-2xx response into an error. Structured error
// bodies keep their message; anything else gets the generic fallback.
func (c *Client) decodeError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return backend.ErrUnauthorized
	}

	var eb errorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(data, &eb)

	message := eb.Error
	if message == "" {
		message = eb.Message
	}
	if message == "" {
		if resp.StatusCode == http.StatusNotFound {
			return backend.ErrNotFound
		}
		message = fallbackMessage
	}

	return &backend.StatusError{StatusCode: resp.StatusCode, Message: message}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
