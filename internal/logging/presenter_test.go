// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresentError(t *testing.T) {
	assert.Empty(t, PresentError("learnhub", nil))

	out := PresentError("learnhub", errors.New("sent password=hunter2"))
	assert.Contains(t, out, "learnhub: sent password=***")
	assert.NotContains(t, out, "hunter2")
}
