// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package model defines the account data exchanged with the Learnhub backend.
// The types mirror the JSON the Laravel API returns for the authenticated user
// and its one-to-one profile relation, and the request bodies the CLI sends.
package model

import (
	"encoding/json"
	"strings"
)

// Role is the platform role carried on a profile.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleLearner    Role = "learner"
)

// legacyRoles maps the backend's Indonesian role names onto Role values.
var legacyRoles = map[string]Role{
	"pengajar": RoleInstructor,
	"pelajar":  RoleLearner,
}

// ParseRole normalizes a role string. Unknown values are returned as-is so
// callers can still display them.
func ParseRole(s string) Role {
	v := strings.ToLower(strings.TrimSpace(s))
	if r, ok := legacyRoles[v]; ok {
		return r
	}
	return Role(v)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleLearner:
		return true
	}
	return false
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

// Profile is the extended record related one-to-one to an Identity.
type Profile struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	FullName  string `json:"full_name"`
	Headline  string `json:"headline"`
	Bio       string `json:"bio"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Identity is the authenticated account as returned by /api/user.
type Identity struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Profile *Profile `json:"profile,omitempty"`
}

// Clone returns a deep copy of the identity, or nil.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	out := *i
	out.Profile = i.Profile.Clone()
	return &out
}

// Clone returns a copy of the profile, or nil.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

// ProfileUpdate is a partial profile. Nil fields are left out of the request.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Headline *string `json:"headline,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Role     *Role   `json:"role,omitempty"`
}

// Empty reports whether no field is set.
func (u ProfileUpdate) Empty() bool {
	return u.FullName == nil && u.Headline == nil && u.Bio == nil && u.Role == nil
}

// Registration is the POST /api/register body.
type Registration struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Credentials is the POST /api/login body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
