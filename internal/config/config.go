// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; session cookies go to the OS keychain.
//
// Values are layered: defaults, then config.json, then a .env file in the working
// directory, then LEARNHUB_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"learnhub/cli/internal/xdg"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL   string        `json:"base_url" env:"BASE_URL"`
	Origin    string        `json:"origin,omitempty" env:"ORIGIN"`
	LogLevel  string        `json:"log_level" env:"LOG_LEVEL"`
	Timeout   time.Duration `json:"timeout" env:"TIMEOUT"`
	DevBypass bool          `json:"dev_bypass" env:"DEV_BYPASS"`
	DevRole   string        `json:"dev_role,omitempty" env:"DEV_ROLE"`
}

// envPrefix namespaces the environment overrides.
const envPrefix = "LEARNHUB_"

// Keys lists the settable keys in display order.
var Keys = []string{"base_url", "origin", "log_level", "timeout", "dev_bypass", "dev_role"}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL:  "http://localhost:8000",
		LogLevel: "info",
		Timeout:  10 * time.Second,
	}
}

// Path returns the location of config.json inside the XDG config dir.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults. Environment
// overrides are applied on top.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("config: read .env: %w", err)
	}
	if err := env.ParseWithOptions(&c, env.Options{Prefix: envPrefix}); err != nil {
		return c, fmt.Errorf("config: parse environment: %w", err)
	}
	return c, nil
}

// LoadFile reads only the config file, without environment overrides.
func LoadFile() (Config, error) {
	c := Default()
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", p, err)
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Set assigns key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "base_url":
		c.BaseURL = strings.TrimRight(strings.TrimSpace(value), "/")
	case "origin":
		c.Origin = strings.TrimSpace(value)
	case "log_level":
		c.LogLevel = strings.ToLower(strings.TrimSpace(value))
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		c.Timeout = d
	case "dev_bypass":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("dev_bypass: %w", err)
		}
		c.DevBypass = b
	case "dev_role":
		c.DevRole = strings.TrimSpace(value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// Get returns the string form of key.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "base_url":
		return c.BaseURL, nil
	case "origin":
		return c.Origin, nil
	case "log_level":
		return c.LogLevel, nil
	case "timeout":
		return c.Timeout.String(), nil
	case "dev_bypass":
		return strconv.FormatBool(c.DevBypass), nil
	case "dev_role":
		return c.DevRole, nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}
