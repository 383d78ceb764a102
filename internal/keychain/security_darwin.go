// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build darwin

package keychain

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// securityBackend implements keychain operations using macOS security command.
type securityBackend struct{}

// newSecurityBackend creates a new macOS security command backend.
func newSecurityBackend() (*securityBackend, error) {
	if _, err := exec.LookPath("security"); err != nil {
		return nil, fmt.Errorf("security command not found: %w", err)
	}
	return &securityBackend{}, nil
}

// Set stores a key-value pair in macOS keychain.
func (s *securityBackend) Set(key, value string) error {
	slog.Debug("keychain set", slog.String("key", key), slog.Int("length", len(value)))

	// Delete existing entry first (ignore errors if it doesn't exist)
	_ = s.Delete(key)

	// The command is read from stdin by "security -i" so the value never
	// shows up in the process list.
	cmd := exec.Command("security", "-i")
	cmd.Stdin = strings.NewReader(addPasswordCommand(key, value))

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if msg := strings.TrimSpace(stderr.String()); err != nil || msg != "" {
		if err == nil {
			err = errors.New("security reported an error")
		}
		return fmt.Errorf("failed to store '%s' in keychain: %s: %w", key, msg, err)
	}
	return nil
}

// addPasswordCommand is the interactive-mode line storing value under key.
// The value is hex encoded (-X) so it needs no quoting.
func addPasswordCommand(key, value string) string {
	return fmt.Sprintf("add-generic-password -U -a %s -s %s -X %s\n",
		ServiceName, key, hex.EncodeToString([]byte(value)))
}

// Get retrieves a value from macOS keychain.
func (s *securityBackend) Get(key string) (string, error) {
	cmd := exec.Command("security", "find-generic-password",
		"-a", ServiceName, // account name
		"-s", key, // service name
		"-w", // output password only
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if strings.Contains(stderr.String(), "could not be found") {
			slog.Debug("keychain key not found", slog.String("key", key))
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to retrieve from keychain: %s: %w", strings.TrimSpace(stderr.String()), err)
	}

	result := strings.TrimSpace(stdout.String())
	slog.Debug("keychain get", slog.String("key", key), slog.Int("length", len(result)))
	return result, nil
}

// Delete removes a key from macOS keychain.
func (s *securityBackend) Delete(key string) error {
	cmd := exec.Command("security", "delete-generic-password",
		"-a", ServiceName, // account name
		"-s", key, // service name
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Ignore "not found" errors
		if strings.Contains(stderr.String(), "could not be found") {
			return nil
		}
		return fmt.Errorf("failed to delete from keychain: %s: %w", strings.TrimSpace(stderr.String()), err)
	}
	return nil
}
