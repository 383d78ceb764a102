// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"log/slog"
	"time"

	"learnhub/cli/internal/backend"
	"learnhub/cli/internal/model"
)

// Resolver finds the identity of an already established session at startup.
type Resolver interface {
	Resolve(ctx context.Context) (*model.Identity, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context) (*model.Identity, error)

func (f ResolverFunc) Resolve(ctx context.Context) (*model.Identity, error) { return f(ctx) }

// RemoteResolver asks the backend which account the session cookie belongs to.
type RemoteResolver struct {
	api backend.API
}

// NewRemoteResolver returns a resolver calling api.FetchUser.
func NewRemoteResolver(api backend.API) *RemoteResolver {
	return &RemoteResolver{api: api}
}

func (r *RemoteResolver) Resolve(ctx context.Context) (*model.Identity, error) {
	return r.api.FetchUser(ctx)
}

// StaticResolver always resolves to a fixed development identity without
// touching the network. Sign-in, sign-out and profile updates still go to the backend.
type StaticResolver struct {
	identity model.Identity
	logger   *slog.Logger
	now      func() time.Time
}

// NewStaticResolver returns a resolver for the development bypass account with
// the given role (admin when empty).
func NewStaticResolver(role model.Role, logger *slog.Logger) *StaticResolver {
	if role == "" {
		role = model.RoleAdmin
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StaticResolver{
		identity: model.Identity{
			ID:    1,
			Name:  "Admin Dev",
			Email: "admin.dev@web.com",
			Profile: &model.Profile{
				ID:       1,
				UserID:   1,
				FullName: "Admin Developer",
				Headline: "Super Admin",
				Bio:      "Development bypass account.",
				Role:     role,
			},
		},
		logger: logger,
		now:    time.Now,
	}
}

func (r *StaticResolver) Resolve(ctx context.Context) (*model.Identity, error) {
	r.logger.Warn("development login bypass is active",
		slog.String("email", r.identity.Email),
		slog.String("role", string(r.identity.Profile.Role)),
	)
	id := r.identity.Clone()
	id.Profile.CreatedAt = r.now().UTC().Format(time.RFC3339)
	return id, nil
}
