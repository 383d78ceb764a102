// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"learnhub/cli/internal/backend"
	apperr "learnhub/cli/internal/errors"
	"learnhub/cli/internal/httperrors"
	"learnhub/cli/internal/logging"
	"learnhub/cli/internal/model"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// startSpinner shows a spinner followed by text in a pterm area until the
// returned function is called. Nothing is drawn when stdout is not a terminal.
func startSpinner(text string) func() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func() {}
	}
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return func() {}
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		i := 0
		for {
			select {
			case <-t.C:
				area.Update(fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], text))
				i++
			case <-stop:
				return
			}
		}
	}()

	return func() {
		close(stop)
		wg.Wait()
		_ = area.Stop()
		cursor.Show()
	}
}

// presentError shows a failed session operation and returns errReported.
// Transport failures get troubleshooting help for baseURL.
func presentError(action string, err error, baseURL string) error {
	var apiErr *backend.APIError
	var e *apperr.E
	cause := err
	if errors.As(err, &e) && e.Err != nil {
		cause = e.Err
	}
	if e != nil && e.Kind == apperr.Remote && !errors.As(err, &apiErr) && httperrors.IsNetworkError(cause) {
		_ = httperrors.FormatNetworkError(cause, action, baseURL)
		return errReported
	}
	logging.PresentAuthError(action, err)
	return errReported
}

// identityBox renders the identity and profile as a pterm box.
func identityBox(title string, id *model.Identity, p *model.Profile) string {
	var b strings.Builder
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-10s %s\n", label+":", value)
		}
	}
	row("Name", id.Name)
	row("Email", id.Email)
	if p != nil {
		row("Role", roleLabel(p.Role))
		row("Full name", p.FullName)
		row("Headline", p.Headline)
		row("Bio", p.Bio)
		row("Joined", p.CreatedAt)
	}
	return pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(title)).
		WithPadding(1).
		Sprint(strings.TrimRight(b.String(), "\n"))
}

func roleLabel(r model.Role) string {
	if r == "" {
		return "-"
	}
	if !r.Valid() {
		return string(r) + " (unknown)"
	}
	return string(r)
}

func printNotLoggedIn() {
	fmt.Println("🔒 You're not logged in yet!")
	fmt.Println("   Run 'learnhub login' to get started.")
}
