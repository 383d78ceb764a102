// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: KindTimeout},
		{name: "dns", err: &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{Name: "x"}}, want: KindDNS},
		{name: "refused", err: fmt.Errorf("dial: %w", syscall.ECONNREFUSED), want: KindConnectionRefused},
		{name: "tls", err: errors.New("x509: certificate signed by unknown authority"), want: KindTLS},
		{name: "generic", err: errors.New("boom"), want: KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestIsNetworkError(t *testing.T) {
	assert.True(t, IsNetworkError(&url.Error{Op: "Post", URL: "http://x", Err: errors.New("EOF")}))
	assert.False(t, IsNetworkError(errors.New("422 unprocessable")))
	assert.False(t, IsNetworkError(nil))
}

func TestExtractHostFromURL(t *testing.T) {
	assert.Equal(t, "localhost:8000", ExtractHostFromURL("http://localhost:8000/api"))
	assert.Equal(t, "server", ExtractHostFromURL("::"))
}
