// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPasswordCommand_KeepsValueOutOfArgs(t *testing.T) {
	value := `[{"name":"laravel_session","value":"abc def"}]`

	line := addPasswordCommand(KeySessionCookies, value)

	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.NotContains(t, line, "laravel_session")
	fields := strings.Fields(line)
	require.Equal(t, []string{"add-generic-password", "-U", "-a", ServiceName, "-s", KeySessionCookies, "-X"}, fields[:7])
	decoded, err := hex.DecodeString(fields[7])
	require.NoError(t, err)
	assert.Equal(t, value, string(decoded))
}
