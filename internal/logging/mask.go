// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials and secrets.
//
// The package helps ensure that passwords, CSRF tokens and session cookies
// are not accidentally exposed in logs or error messages shown to users.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)("?password(?:_confirmation)?"?\s*[=:]\s*"?)([^\s;",}]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._%-]+)`)
	reXSRF     = regexp.MustCompile(`(?i)(x-xsrf-token:\s*|xsrf-token=)([^\s;]+)`)
	reSession  = regexp.MustCompile(`(?i)([a-z0-9_]*_session=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "${1}***")
	out = reXSRF.ReplaceAllString(out, "${1}***")
	out = reSession.ReplaceAllString(out, "${1}***")
	out = reToken.ReplaceAllString(out, "${1}***")
	return out
}
