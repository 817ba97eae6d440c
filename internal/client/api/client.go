package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/avolkovs/storekeeper/internal/common"
	"github.com/avolkovs/storekeeper/internal/logging"
)

// maxBodySize caps how much of a response body is read; backend payloads are
// small JSON documents, anything bigger is a misbehaving server.
const maxBodySize = 8 << 20

// Config wires the pipeline's dependencies. TokenSource and OnUnauthorized
// are passed in explicitly: the pipeline owns no session state of its own.
type Config struct {
	// Timeout bounds every call; zero means no client-side limit.
	Timeout time.Duration

	// TokenSource supplies the bearer token per request. Optional.
	TokenSource TokenSource

	// OnUnauthorized is invoked once per 401 response. Optional.
	OnUnauthorized func()

	// Transport is the base RoundTripper; defaults to http.DefaultTransport.
	Transport http.RoundTripper

	Logger logging.Logger
}

// Client is the single outbound HTTP pipeline. All service calls go through
// one of its verb helpers, so interception applies uniformly.
type Client struct {
	http *http.Client
	log  logging.Logger
}

func New(cfg Config) *Client {
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &authTransport{
				base:           base,
				tokenSource:    cfg.TokenSource,
				onUnauthorized: cfg.OnUnauthorized,
			},
		},
		log: cfg.Logger,
	}
}

// envelope is the backend's uniform success payload shape.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Get issues a GET and unmarshals the envelope's data into out (which may be
// nil when only the status matters). Returns the envelope message.
func (c *Client) Get(ctx context.Context, url string, out any) (string, error) {
	return c.do(ctx, http.MethodGet, url, nil, "", out)
}

// Post issues a POST with a JSON body (nil body means no payload).
func (c *Client) Post(ctx context.Context, url string, body any, out any) (string, error) {
	reader, err := jsonBody(body)
	if err != nil {
		return "", err
	}
	return c.do(ctx, http.MethodPost, url, reader, "application/json", out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, url string, body any, out any) (string, error) {
	reader, err := jsonBody(body)
	if err != nil {
		return "", err
	}
	return c.do(ctx, http.MethodPut, url, reader, "application/json", out)
}

// PutText issues a PUT with a plain-text body. The reset-password endpoint
// takes the new password as raw text, not JSON.
func (c *Client) PutText(ctx context.Context, url string, text string, out any) (string, error) {
	return c.do(ctx, http.MethodPut, url, strings.NewReader(text), "text/plain", out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, url string) (string, error) {
	return c.do(ctx, http.MethodDelete, url, nil, "", nil)
}

// PostMultipart uploads a single file as a multipart form under field.
func (c *Client) PostMultipart(ctx context.Context, url, field, filename string, content io.Reader, out any) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	return c.do(ctx, http.MethodPost, url, &buf, mw.FormDataContentType(), out)
}

func jsonBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, contentType string, out any) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return "", err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Context cancellation is the caller's doing; everything else is the
		// network's. Both pass through, only the latter gets the sentinel.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		if c.log != nil {
			c.log.Error(ctx, "request failed", "method", method, "url", url, "error", err)
		}
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if json.Unmarshal(data, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
		}
		if c.log != nil {
			c.log.Warn(ctx, "request rejected", "method", method, "url", url, "status", resp.StatusCode)
		}
		return "", apiErr
	}

	var env envelope
	if len(data) > 0 {
		// Some endpoints (token validation) answer with an empty or
		// non-enveloped body; tolerate it when the caller wants no data.
		if err := json.Unmarshal(data, &env); err != nil && out != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return env.Message, nil
}
