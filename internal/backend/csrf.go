// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/url"
	"strings"
)

const (
	// xsrfCookieName is the readable cookie Sanctum sets on /sanctum/csrf-cookie.
	xsrfCookieName = "XSRF-TOKEN"
	// xsrfHeaderName is where the decoded cookie value is echoed back.
	xsrfHeaderName = "X-XSRF-TOKEN"
)

// xsrfToken returns the decoded XSRF-TOKEN cookie for the base URL, or "".
// Laravel URL-encodes the encrypted token in the cookie value.
func (h *HTTP) xsrfToken() string {
	if h.client.Jar == nil {
		return ""
	}
	for _, c := range h.client.Jar.Cookies(h.base) {
		if c.Name != xsrfCookieName {
			continue
		}
		v, err := url.QueryUnescape(c.Value)
		if err != nil {
			return strings.TrimSpace(c.Value)
		}
		return strings.TrimSpace(v)
	}
	return ""
}
