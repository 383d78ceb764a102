// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/cli/internal/model"
)

func TestStaticResolver_DevIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := NewStaticResolver("", logger)
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	api := &fakeAPI{}
	c := New(api, WithResolver(r))
	c.ResolveExistingSession(context.Background())

	s := c.Snapshot()
	require.NotNil(t, s.Identity)
	assert.Equal(t, "admin.dev@web.com", s.Identity.Email)
	assert.Equal(t, model.RoleAdmin, s.Profile.Role)
	assert.Equal(t, "2026-01-02T03:04:05Z", s.Profile.CreatedAt)
	assert.False(t, s.Loading)
	assert.Empty(t, api.Calls(), "bypass must not reach the backend")
	assert.Contains(t, buf.String(), "development login bypass is active")
}

func TestStaticResolver_RoleOverride(t *testing.T) {
	r := NewStaticResolver(model.RoleInstructor, nil)

	id, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, id.Profile.Role)

	// Each resolution hands out its own copy.
	id.Profile.Role = model.RoleLearner
	again, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, again.Profile.Role)
}

func TestResolverFunc(t *testing.T) {
	want := &model.Identity{ID: 9}
	c := New(&fakeAPI{}, WithResolver(ResolverFunc(func(context.Context) (*model.Identity, error) {
		return want, nil
	})))
	c.ResolveExistingSession(context.Background())
	assert.Equal(t, int64(9), c.Snapshot().Identity.ID)
}
