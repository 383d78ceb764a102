// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"learnhub/cli/internal/keychain"
)

// Load reads the auth state from the keychain. Missing state yields zero value.
// Unreadable state is discarded, the saved cookies are kept.
func Load() (State, error) {
	var s State
	km, err := keychain.GetManager()
	if err != nil {
		return s, err
	}

	data, err := km.LoadAuthState()
	if errors.Is(err, keychain.ErrNotFound) {
		slog.Debug("no auth state in keychain")
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s); err != nil {
		slog.Warn("discarding unreadable auth state", slog.Any("error", err))
		return State{}, km.ClearAuthState()
	}
	slog.Debug("loaded auth state", slog.Bool("signed_in", s.SignedIn), slog.String("account", s.Account))
	return s, nil
}

// Save writes the auth state to the keychain.
func Save(s State) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveAuthState(b)
}

// Clear removes the auth state and the session cookies from the keychain.
func Clear() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearAuth()
}

// storedCookie is the part of a cookie the jar hands back for a URL.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SaveCookies stores the cookies the jar would send to the backend.
func SaveCookies(cookies []*http.Cookie) error {
	out := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, storedCookie{Name: c.Name, Value: c.Value})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}

	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveSessionCookies(b)
}

// LoadCookies returns the stored backend cookies, or nil when none were saved.
func LoadCookies() ([]*http.Cookie, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return nil, err
	}

	data, err := km.LoadSessionCookies()
	if errors.Is(err, keychain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	return cookies, nil
}
