// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for failed requests
// to the Learnhub backend.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Kind classifies a transport failure.
type Kind int

const (
	KindGeneric Kind = iota
	KindTimeout
	KindDNS
	KindConnectionRefused
	KindTLS
)

// Classify inspects a transport error.
func Classify(err error) Kind {
	switch {
	case isTimeoutError(err):
		return KindTimeout
	case isDNSError(err):
		return KindDNS
	case isConnectionRefusedError(err):
		return KindConnectionRefused
	case isSSLError(err):
		return KindTLS
	}
	return KindGeneric
}

// IsNetworkError reports whether err came from the transport rather than an
// HTTP response.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr) || Classify(err) != KindGeneric
}

// FormatNetworkError prints troubleshooting help for a transport error against
// baseURL and returns it wrapped.
func FormatNetworkError(err error, context, baseURL string) error {
	if err == nil {
		return nil
	}

	displayErrorMessage(err, context, ExtractHostFromURL(baseURL))

	return fmt.Errorf("network error: %w", err)
}

func displayErrorMessage(err error, context, host string) {
	switch Classify(err) {
	case KindTimeout:
		showTimeoutError(context)
	case KindDNS:
		showDNSError(context, host)
	case KindConnectionRefused:
		showConnectionRefusedError(context, host)
	case KindTLS:
		showSSLError(context)
	default:
		showGenericError(context, host, err.Error())
	}
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isSSLError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate")
}

func showTimeoutError(context string) {
	pterm.Printf("⏱️  Connection timeout while %s\n", context)
	pterm.Println()
	pterm.Println("The Learnhub backend took too long to respond. This could mean:")
	pterm.Println("  • Slow internet connection")
	pterm.Println("  • The server is under heavy load")
	pterm.Println()
	pterm.Println("Raise the timeout with 'learnhub config set timeout 30s' or try again.")
	pterm.Println()
}

func showDNSError(context, host string) {
	pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
	pterm.Println()
	pterm.Printf("Unable to look up %s. Please check:\n", host)
	pterm.Println("  • Your internet connection is working")
	pterm.Println("  • base_url in 'learnhub config show' is spelled correctly")
	pterm.Println()
}

func showConnectionRefusedError(context, host string) {
	pterm.Printf("🚫 Connection refused while %s\n", context)
	pterm.Println()
	pterm.Printf("Nothing is accepting connections at %s. This could mean:\n", host)
	pterm.Println("  • The backend is not running ('php artisan serve' for local development)")
	pterm.Println("  • Wrong server address or port")
	pterm.Println()
}

func showSSLError(context string) {
	pterm.Printf("🔒 Secure connection failed while %s\n", context)
	pterm.Println()
	pterm.Println("Cannot establish a secure HTTPS connection. Try:")
	pterm.Println("  • Check your system date and time")
	pterm.Println("  • Verify network proxy settings")
	pterm.Println()
}

func showGenericError(context, host, errDetails string) {
	pterm.Printf("❌ Cannot reach %s while %s\n", host, context)
	pterm.Println()

	if errDetails != "" {
		shortErr := errDetails
		if len(shortErr) > 100 {
			shortErr = shortErr[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", shortErr)
		pterm.Println()
	}
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
