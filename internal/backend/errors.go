// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// APIError is a non-2xx response from the backend.
// Payload holds the decoded JSON object body, or nil when the body was not one.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Payload map[string]any
	Body    string
}

func (e *APIError) Error() string {
	if m, ok := e.Payload["message"].(string); ok && m != "" {
		return fmt.Sprintf("%s %s failed: %d %s", e.Method, e.Path, e.Status, m)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s %s failed: %d %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("%s %s failed: %d", e.Method, e.Path, e.Status)
}

// Unauthenticated reports whether the backend rejected the session
// (401, or 419 for an expired CSRF token).
func (e *APIError) Unauthenticated() bool {
	return e.Status == http.StatusUnauthorized || e.Status == 419
}

func newAPIError(method, path string, resp *http.Response) *APIError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{
		Method: method,
		Path:   path,
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(b)),
	}
	var payload map[string]any
	if err := json.Unmarshal(b, &payload); err == nil && payload != nil {
		apiErr.Payload = payload
	}
	return apiErr
}
