// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the HTTP backend.
type Option func(*HTTP)

// WithJar sets the cookie jar holding the Laravel session and XSRF cookies.
func WithJar(jar http.CookieJar) Option {
	return func(h *HTTP) { h.client.Jar = jar }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) {
		if d > 0 {
			h.client.Timeout = d
		}
	}
}

// WithEndpoints overrides the endpoint paths.
func WithEndpoints(e Endpoints) Option {
	return func(h *HTTP) { h.endpoints = e.withDefaults() }
}

// WithOrigin sets the Origin and Referer headers Sanctum uses to recognise
// first-party (stateful) requests.
func WithOrigin(origin string) Option {
	return func(h *HTTP) { h.origin = origin }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(h *HTTP) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates a backend API implementation for baseURL.
// Returns HTTP client (real backend).
func New(baseURL string, opts ...Option) (API, error) {
	return newHTTP(baseURL, opts...)
}
