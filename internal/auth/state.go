// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth wires the session controller to the CLI: it builds the backend
// client from config, restores the Laravel session cookies saved by a previous
// invocation and persists the session state to the OS keychain after every
// change.
package auth

import (
	"learnhub/cli/internal/model"
	"learnhub/cli/internal/session"
)

// State represents persisted authentication state for the current user.
// Identity is the last identity the backend confirmed, shown when it is unreachable.
type State struct {
	SignedIn bool            `json:"signed_in"`
	Account  string          `json:"account"`
	Name     string          `json:"name,omitempty"`
	Role     model.Role      `json:"role,omitempty"`
	Identity *model.Identity `json:"identity,omitempty"`
}

// StateFromSnapshot derives the persisted state from a session snapshot.
func StateFromSnapshot(s session.Snapshot) State {
	if !s.SignedIn() {
		return State{}
	}
	st := State{
		SignedIn: true,
		Account:  s.Identity.Email,
		Name:     s.Identity.Name,
		Identity: s.Identity.Clone(),
	}
	if s.Profile != nil {
		st.Role = s.Profile.Role
	}
	return st
}

// DisplayName is the name to greet the user with.
func (s State) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Account
}
