// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	apperr "learnhub/cli/internal/errors"
)

// AuthErrorType represents the category of a failed session operation.
type AuthErrorType int

const (
	AuthErrorUnknown AuthErrorType = iota
	AuthErrorValidation
	AuthErrorUnauthenticated
	AuthErrorServer
	AuthErrorNoUser
	AuthErrorNetwork
)

// ParseAuthError categorizes an error returned by the session controller.
func ParseAuthError(err error) AuthErrorType {
	var e *apperr.E
	if !errors.As(err, &e) {
		return AuthErrorUnknown
	}
	switch {
	case e.Kind == apperr.NoUserLoggedIn:
		return AuthErrorNoUser
	case e.Status == 422:
		return AuthErrorValidation
	case e.Status == 401 || e.Status == 419:
		return AuthErrorUnauthenticated
	case e.Status >= 500:
		return AuthErrorServer
	case e.Status == 0:
		return AuthErrorNetwork
	}
	return AuthErrorUnknown
}

// FieldErrors extracts Laravel's {"errors": {"field": ["msg", ...]}} map,
// sorted by field name.
func FieldErrors(payload map[string]any) [][2]string {
	raw, ok := payload["errors"].(map[string]any)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(raw))
	for f := range raw {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var out [][2]string
	for _, f := range fields {
		switch v := raw[f].(type) {
		case []any:
			for _, m := range v {
				if s, ok := m.(string); ok {
					out = append(out, [2]string{f, s})
				}
			}
		case string:
			out = append(out, [2]string{f, v})
		}
	}
	return out
}

// FormatAuthError formats a session error in a user-friendly way.
func FormatAuthError(action string, err error) string {
	if err == nil {
		return ""
	}
	var e *apperr.E
	msg := err.Error()
	if errors.As(err, &e) {
		msg = e.Message
	}

	var builder strings.Builder

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(capitalize(action) + " failed"))
	builder.WriteString("\n\n")
	builder.WriteString(Mask(msg))
	builder.WriteString("\n")

	switch ParseAuthError(err) {
	case AuthErrorValidation:
		if fe := FieldErrors(e.Payload); len(fe) > 0 {
			builder.WriteString("\n")
			for _, f := range fe {
				builder.WriteString(fmt.Sprintf("  • %s: %s\n", f[0], f[1]))
			}
		}

	case AuthErrorUnauthenticated:
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Your session has expired. Run 'learnhub login' and try again"))
		builder.WriteString("\n")

	case AuthErrorNoUser:
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Run 'learnhub login' first"))
		builder.WriteString("\n")

	case AuthErrorServer:
		builder.WriteString("\n")
		builder.WriteString("The Learnhub server encountered an internal error.\n")
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Please try again in a few minutes"))
		builder.WriteString("\n")
	}

	// Technical details (optional, for debugging)
	if e != nil && e.Err != nil {
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(e.Err.Error())))
		builder.WriteString("\n")
	}

	return builder.String()
}

// PresentAuthError displays a formatted session error.
func PresentAuthError(action string, err error) {
	fmt.Println()
	fmt.Print(FormatAuthError(action, err))
	fmt.Println()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
