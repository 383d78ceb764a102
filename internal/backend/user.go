// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"

	"learnhub/cli/internal/model"
)

// FetchUser calls GET /api/user and returns the account bound to the session cookie.
// An unauthenticated session yields an *APIError with status 401.
func (h *HTTP) FetchUser(ctx context.Context) (*model.Identity, error) {
	return h.identityRequest(ctx, http.MethodGet, h.endpoints.User, nil)
}

// UpdateProfile calls PUT /api/user/profile with the set fields of update
// and returns the profile as stored by the backend.
func (h *HTTP) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.Profile, error) {
	var p model.Profile
	if err := h.do(ctx, http.MethodPut, h.endpoints.UpdateProfile, update, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
