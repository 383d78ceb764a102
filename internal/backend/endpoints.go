// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

// Endpoints contains the REST paths of the authentication API.
type Endpoints struct {
	CSRFCookie    string `json:"csrf_cookie"`
	Register      string `json:"register"`
	Login         string `json:"login"`
	Logout        string `json:"logout"`
	User          string `json:"user"`
	UpdateProfile string `json:"update_profile"`
}

// DefaultEndpoints returns the paths served by the Laravel/Sanctum backend.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		CSRFCookie:    "/sanctum/csrf-cookie",
		Register:      "/api/register",
		Login:         "/api/login",
		Logout:        "/api/logout",
		User:          "/api/user",
		UpdateProfile: "/api/user/profile",
	}
}

// withDefaults fills empty paths from DefaultEndpoints.
func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.CSRFCookie == "" {
		e.CSRFCookie = d.CSRFCookie
	}
	if e.Register == "" {
		e.Register = d.Register
	}
	if e.Login == "" {
		e.Login = d.Login
	}
	if e.Logout == "" {
		e.Logout = d.Logout
	}
	if e.User == "" {
		e.User = d.User
	}
	if e.UpdateProfile == "" {
		e.UpdateProfile = d.UpdateProfile
	}
	return e
}
