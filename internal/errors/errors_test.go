package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPayload(t *testing.T) {
	cause := stderrors.New("POST /api/login failed: 422")
	payload := map[string]any{"message": "Invalid credentials"}

	e := FromPayload(422, payload, "Login failed", cause)
	assert.Equal(t, Remote, e.Kind)
	assert.Equal(t, "Invalid credentials", e.Message)
	assert.Equal(t, 422, e.Status)
	assert.Equal(t, payload, e.Payload)
	assert.ErrorIs(t, e, cause)
}

func TestFromPayload_FallbackMessage(t *testing.T) {
	e := FromPayload(500, map[string]any{"error": "boom"}, "Login failed", nil)
	assert.Equal(t, "Login failed", e.Message)
	assert.Equal(t, map[string]any{"error": "boom"}, e.Payload)
}

func TestWrap_GenericPayload(t *testing.T) {
	e := Wrap(Remote, "Update failed", stderrors.New("dial tcp: refused"))
	assert.Equal(t, map[string]any{"message": "Update failed"}, e.Payload)
	assert.Equal(t, "remote: Update failed: dial tcp: refused", e.Error())
}

func TestIs_MatchesKind(t *testing.T) {
	err := fmt.Errorf("profile: %w", New(NoUserLoggedIn, "No user logged in"))
	assert.ErrorIs(t, err, New(NoUserLoggedIn, ""))
	assert.NotErrorIs(t, err, New(Remote, ""))

	var e *E
	assert.True(t, stderrors.As(err, &e))
	assert.Equal(t, "no_user_logged_in: No user logged in", e.Error())
}
