// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"errors"
	"net/http"

	"learnhub/cli/internal/model"
)

// errEmptyIdentity is returned when a 2xx response carries no usable account.
var errEmptyIdentity = errors.New("backend returned an empty identity")

// PrimeCSRF calls GET /sanctum/csrf-cookie.
// The response only sets the XSRF-TOKEN and session cookies in the jar; the body is discarded.
func (h *HTTP) PrimeCSRF(ctx context.Context) error {
	return h.do(ctx, http.MethodGet, h.endpoints.CSRFCookie, nil, nil)
}

// Register posts { name, email, password, password_confirmation } to /api/register.
// On success the backend signs the new account in and returns it.
func (h *HTTP) Register(ctx context.Context, reg model.Registration) (*model.Identity, error) {
	return h.identityRequest(ctx, http.MethodPost, h.endpoints.Register, reg)
}

// Login posts { email, password } to /api/login and returns the signed-in account.
func (h *HTTP) Login(ctx context.Context, creds model.Credentials) (*model.Identity, error) {
	return h.identityRequest(ctx, http.MethodPost, h.endpoints.Login, creds)
}

// Logout calls POST /api/logout. Any 2xx response counts as success.
func (h *HTTP) Logout(ctx context.Context) error {
	return h.do(ctx, http.MethodPost, h.endpoints.Logout, nil, nil)
}

// identityRequest sends body and decodes an Identity from the response.
func (h *HTTP) identityRequest(ctx context.Context, method, path string, body any) (*model.Identity, error) {
	var id model.Identity
	if err := h.do(ctx, method, path, body, &id); err != nil {
		return nil, err
	}
	if id.ID == 0 && id.Email == "" {
		return nil, errEmptyIdentity
	}
	return &id, nil
}
