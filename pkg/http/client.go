// Package http is a fluent JSON HTTP client with retry and backoff,
// used for outbound calls to payment gateways and other services.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/chitralaya/chitralaya/pkg/logger"
)

type Client struct {
	inner     *nethttp.Client
	retries   int
	backoff   time.Duration
	headers   map[string]string
	basicUser string
	basicPass string
}

type Response struct {
	StatusCode int
	Body       []byte
}

// JSON unmarshals the response body into dest.
func (r *Response) JSON(dest any) error {
	if err := json.Unmarshal(r.Body, dest); err != nil {
		return fmt.Errorf("http: decode response: %w", err)
	}
	return nil
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func New() *Client {
	return &Client{
		inner:   &nethttp.Client{Timeout: 15 * time.Second},
		retries: 2,
		backoff: 500 * time.Millisecond,
		headers: map[string]string{},
	}
}

func (c *Client) WithTimeout(d time.Duration) *Client {
	c.inner.Timeout = d
	return c
}

func (c *Client) WithRetries(n int) *Client {
	c.retries = n
	return c
}

func (c *Client) WithBackoff(d time.Duration) *Client {
	c.backoff = d
	return c
}

func (c *Client) WithHeader(key, value string) *Client {
	c.headers[key] = value
	return c
}

func (c *Client) WithBasicAuth(user, pass string) *Client {
	c.basicUser, c.basicPass = user, pass
	return c
}

func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.do(ctx, nethttp.MethodGet, url, nil)
}

// PostJSON sends body as JSON and returns the response.
func (c *Client) PostJSON(ctx context.Context, url string, body any) (*Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("http: encode body: %w", err)
	}
	return c.do(ctx, nethttp.MethodPost, url, raw)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff * time.Duration(attempt)):
			}
			logger.Debug("http: retrying", "method", method, "url", url, "attempt", attempt)
		}

		resp, err := c.attempt(ctx, method, url, body)
		if err != nil {
			lastErr = err
			continue
		}

		// 5xx responses are retried, 4xx are the caller's problem.
		if resp.StatusCode >= 500 && attempt < c.retries {
			lastErr = fmt.Errorf("http: %s %s returned %d", method, url, resp.StatusCode)
			continue
		}

		return resp, nil
	}

	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, method, url string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	if c.basicUser != "" {
		req.SetBasicAuth(c.basicUser, c.basicPass)
	}

	resp, err := c.inner.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode, Body: raw}, nil
}
