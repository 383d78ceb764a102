// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the signed-in account of the CLI and mediates every change to it.
//
// A Controller owns a Snapshot (identity, profile, loading flag). The snapshot only
// changes after a backend call completes, and each change is pushed synchronously to
// every subscribed Listener before the operation that caused it returns. Operations
// report failures as *errors.E values carrying the backend's error payload.
//
// Concurrent operations are not serialized against each other: when two
// identity-changing calls overlap, the one that completes last determines the state.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"learnhub/cli/internal/backend"
	apperr "learnhub/cli/internal/errors"
	"learnhub/cli/internal/model"
)

// Fallback messages used when the backend sent no error payload.
const (
	msgRegistrationFailed = "Registration failed"
	msgLoginFailed        = "Login failed"
	msgUpdateFailed       = "Update failed"
	msgNoUserLoggedIn     = "No user logged in"
)

// Snapshot is the observable authentication state.
// Profile is non-nil only when Identity is non-nil.
type Snapshot struct {
	Identity *model.Identity
	Profile  *model.Profile
	Loading  bool
}

// SignedIn reports whether an identity is held.
func (s Snapshot) SignedIn() bool { return s.Identity != nil }

func (s Snapshot) clone() Snapshot {
	return Snapshot{Identity: s.Identity.Clone(), Profile: s.Profile.Clone(), Loading: s.Loading}
}

// Listener receives a copy of the snapshot after every change.
// Listeners run on the goroutine that made the change and must not call
// mutating Controller methods synchronously.
type Listener func(Snapshot)

// Controller is the session state holder.
type Controller struct {
	api      backend.API
	resolver Resolver
	logger   *slog.Logger

	mu        sync.RWMutex
	snap      Snapshot
	listeners []subscription
	nextID    uint64

	// emitMu orders notifications so listeners see changes in the order applied.
	emitMu      sync.Mutex
	resolveOnce sync.Once
}

type subscription struct {
	id uint64
	fn Listener
}

// Option configures a Controller.
type Option func(*Controller)

// WithResolver replaces the default remote resolver.
func WithResolver(r Resolver) Option {
	return func(c *Controller) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithLogger sets the diagnostic sink.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller in the loading state.
func New(api backend.API, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		logger: slog.New(slog.DiscardHandler),
		snap:   Snapshot{Loading: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.resolver = NewRemoteResolver(api)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.clone()
}

// Subscribe registers fn and returns a function that removes it.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.listeners {
				if s.id == id {
					c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// ResolveExistingSession asks the resolver for the current identity. It runs at
// most once per Controller; later calls return immediately. Failures leave the
// controller signed out. Loading is false once this returns.
func (c *Controller) ResolveExistingSession(ctx context.Context) {
	c.resolveOnce.Do(func() {
		id, err := c.resolver.Resolve(ctx)
		if err != nil {
			c.logger.Info("no authenticated session", slog.String("error", err.Error()))
			id = nil
		}
		c.apply(func(s *Snapshot) {
			setIdentity(s, id)
			s.Loading = false
		})
	})
}

// SignUp creates an account and signs it in.
func (c *Controller) SignUp(ctx context.Context, email, password, fullName string) error {
	if err := c.api.PrimeCSRF(ctx); err != nil {
		return remoteError(err, msgRegistrationFailed)
	}
	id, err := c.api.Register(ctx, model.Registration{
		Name:                 fullName,
		Email:                email,
		Password:             password,
		PasswordConfirmation: password,
	})
	if err != nil {
		return remoteError(err, msgRegistrationFailed)
	}
	c.apply(func(s *Snapshot) { setIdentity(s, id) })
	return nil
}

// SignIn authenticates with email and password.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	if err := c.api.PrimeCSRF(ctx); err != nil {
		return remoteError(err, msgLoginFailed)
	}
	id, err := c.api.Login(ctx, model.Credentials{Email: email, Password: password})
	if err != nil {
		return remoteError(err, msgLoginFailed)
	}
	c.apply(func(s *Snapshot) { setIdentity(s, id) })
	return nil
}

// SignOut ends the backend session and always clears the local identity.
// A failed backend call is logged and otherwise ignored.
func (c *Controller) SignOut(ctx context.Context) {
	if err := c.api.Logout(ctx); err != nil {
		c.logger.Warn("logout failed", slog.String("error", err.Error()))
	}
	c.apply(func(s *Snapshot) { setIdentity(s, nil) })
}

// UpdateProfile submits a partial profile and replaces the stored profile with
// the backend's response. Without a signed-in identity it fails without a
// backend call.
func (c *Controller) UpdateProfile(ctx context.Context, update model.ProfileUpdate) error {
	c.mu.RLock()
	signedIn := c.snap.Identity != nil
	c.mu.RUnlock()
	if !signedIn {
		return apperr.New(apperr.NoUserLoggedIn, msgNoUserLoggedIn)
	}

	p, err := c.api.UpdateProfile(ctx, update)
	if err != nil {
		return remoteError(err, msgUpdateFailed)
	}
	c.apply(func(s *Snapshot) {
		// Signed out while the request was in flight.
		if s.Identity == nil {
			return
		}
		s.Profile = p.Clone()
		s.Identity.Profile = p.Clone()
	})
	return nil
}

// apply mutates the snapshot and notifies listeners before returning.
func (c *Controller) apply(mutate func(*Snapshot)) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	mutate(&c.snap)
	snap := c.snap.clone()
	listeners := make([]Listener, len(c.listeners))
	for i, s := range c.listeners {
		listeners[i] = s.fn
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap.clone())
	}
}

// setIdentity stores id and derives the profile from it.
func setIdentity(s *Snapshot, id *model.Identity) {
	if id == nil {
		s.Identity = nil
		s.Profile = nil
		return
	}
	s.Identity = id.Clone()
	s.Profile = id.Profile.Clone()
}

// remoteError converts a backend failure into the error returned to callers.
func remoteError(err error, fallback string) *apperr.E {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Payload != nil {
			return apperr.FromPayload(apiErr.Status, apiErr.Payload, fallback, err)
		}
		e := apperr.Wrap(apperr.Remote, fallback, err)
		e.Status = apiErr.Status
		return e
	}
	return apperr.Wrap(apperr.Remote, fallback, err)
}
