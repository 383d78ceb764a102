// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, pterm.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, pterm.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, pterm.LogLevelDisabled, ParseLevel("off"))
	assert.Equal(t, pterm.LogLevelInfo, ParseLevel("whatever"))
}

func TestMaskingHandler_MasksMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewMaskingHandler(slog.NewTextHandler(&buf, nil)))

	logger.With(slog.String("cookie", "laravel_session=abc")).Info("sent password=hunter2",
		slog.String("header", "X-XSRF-TOKEN: tok"),
		slog.Any("err", errors.New("bad token=zzz")),
		slog.Group("req", slog.String("body", `{"password":"p"}`)),
		slog.Int("status", 200),
	)

	out := buf.String()
	for _, secret := range []string{"abc", "hunter2", "tok\"", "zzz", `\"p\"`} {
		assert.NotContains(t, out, secret)
	}
	assert.Contains(t, out, "status=200")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", &buf)

	logger.Info("quiet")
	assert.Empty(t, buf.String())

	logger.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}
