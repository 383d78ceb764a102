// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// HTTP implements API over the Laravel REST endpoints.
// Authentication is cookie based: the jar carries the session cookie and the
// XSRF-TOKEN cookie, and state-changing requests echo the latter in a header.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://learnhub.test")
	baseURL string
	// base is the parsed baseURL, used to look up cookies in the jar
	base *url.URL
	// endpoints contains the URL paths for the API endpoints
	endpoints Endpoints
	// client is the underlying HTTP client with configured timeout and jar
	client *http.Client
	// origin is sent as Origin/Referer when set
	origin string
	logger *slog.Logger
}

// NewJar returns a cookie jar using the public suffix list.
func NewJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

// newHTTP creates a new HTTP client with the given base URL.
// It configures a 10-second timeout and a fresh cookie jar unless options override them.
func newHTTP(baseURL string, opts ...Option) (*HTTP, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base URL %q", baseURL)
	}
	h := &HTTP{
		baseURL:   trimmed,
		base:      u,
		endpoints: DefaultEndpoints(),
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.client.Jar == nil {
		jar, err := NewJar()
		if err != nil {
			return nil, err
		}
		h.client.Jar = jar
	}
	return h, nil
}

// setStandardHeaders sets the headers Laravel expects from an SPA client.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("User-Agent", "learnhub-cli/1.0")
	if h.origin != "" {
		req.Header.Set("Origin", h.origin)
		req.Header.Set("Referer", strings.TrimRight(h.origin, "/")+"/")
	}
}

// do sends a JSON request and decodes a JSON response into out when out is non-nil.
// Non-2xx responses are returned as *APIError.
func (h *HTTP) do(ctx context.Context, method, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, rdr)
	if err != nil {
		return err
	}
	h.setStandardHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && method != http.MethodHead {
		if token := h.xsrfToken(); token != "" {
			req.Header.Set(xsrfHeaderName, token)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Debug("backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	h.logger.Debug("backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if err := json.Unmarshal(unwrapData(raw), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// unwrapData accepts both bare resources and Laravel API resources wrapped in
// {"data": {...}}. Be liberal in what we accept.
func unwrapData(raw []byte) []byte {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}
	data, ok := envelope["data"]
	if !ok {
		return raw
	}
	if _, hasID := envelope["id"]; hasID {
		return raw
	}
	return data
}
