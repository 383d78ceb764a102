// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the Learnhub backend service.
// It defines the API contract for the Sanctum-protected authentication endpoints the session
// controller depends on. The package includes both the interface and the HTTP implementation.
package backend

import (
	"context"

	"learnhub/cli/internal/model"
)

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// PrimeCSRF fetches the CSRF cookie that must accompany register and login.
	PrimeCSRF(ctx context.Context) error
	Register(ctx context.Context, reg model.Registration) (*model.Identity, error)
	Login(ctx context.Context, creds model.Credentials) (*model.Identity, error)
	// Logout terminates the backend session. The response body is ignored.
	Logout(ctx context.Context) error
	// FetchUser returns the identity bound to the current session cookie.
	FetchUser(ctx context.Context) (*model.Identity, error)
	// UpdateProfile submits a partial update and returns the stored profile.
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.Profile, error)
}
