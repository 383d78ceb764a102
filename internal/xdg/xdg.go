// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package xdg resolves the XDG Base Directory location of the learnhub config.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory created under the XDG base.
const AppName = "learnhub"

// ConfigDir returns the XDG config directory for learnhub.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/learnhub when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// appDir returns $envVar/learnhub, or ~/<fallback>/learnhub.
func appDir(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
