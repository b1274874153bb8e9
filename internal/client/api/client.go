// Package api sends requests to the batch backend with the session token
// attached.
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
	"strings"

	"github.com/heartmarshall/batch-dashboard/internal/client/session"
)

// Client performs one round trip per call. There are no retries and no
// client-side timeout beyond the caller's context.
type Client struct {
	baseURL *url.URL
	session *session.Store
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for the API at baseURL using the given session.
func NewClient(baseURL string, s *session.Store, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		session: s,
		http:    http.DefaultClient,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "api")
	return c, nil
}

// Session returns the store the client reads the token from.
func (c *Client) Session() *session.Store { return c.session }

type requestConfig struct {
	authenticated bool
}

// RequestOption configures a single request.
type RequestOption func(*requestConfig)

// Authenticated requires a token: without one the request fails with
// ErrNoToken before reaching the network, and a 401 or 403 answer clears
// the session.
func Authenticated() RequestOption {
	return func(rc *requestConfig) { rc.authenticated = true }
}

// Send performs method on path with body encoded as JSON (nil for none).
// The bearer header is attached whenever a token is present. Non-2xx
// responses are returned, not turned into errors; see Classify.
func (c *Client) Send(ctx context.Context, method, path string, body any, opts ...RequestOption) (*RawResponse, error) {
	var rc requestConfig
	for _, opt := range opts {
		opt(&rc)
	}

	token, hasToken := c.session.Token()
	if rc.authenticated && !hasToken {
		return nil, ErrNoToken
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if hasToken {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read %s %s: %w", method, path, err)
	}

	c.log.DebugContext(ctx, "api.response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if rc.authenticated && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		c.log.InfoContext(ctx, "session rejected by server, signing out", slog.Int("status", resp.StatusCode))
		c.session.Clear()
	}

	return &RawResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: raw}, nil
}
