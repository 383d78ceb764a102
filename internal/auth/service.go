// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"learnhub/cli/internal/backend"
	"learnhub/cli/internal/config"
	"learnhub/cli/internal/model"
	"learnhub/cli/internal/session"
)

// Service centralizes authentication-related operations against the backend
// and local secure storage/state.
type Service struct {
	cfg       config.Config
	cookieURL *url.URL
	jar       http.CookieJar
	session   *session.Controller
	logger    *slog.Logger
	last      State

	mu         sync.Mutex
	resolveErr error
}

// NewService builds the backend client for cfg, restores saved cookies and
// returns a Service whose session is persisted to the keychain on every change.
// Extra backend options are applied after the ones derived from cfg.
func NewService(cfg config.Config, logger *slog.Logger, opts ...backend.Option) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cookieURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	cookieURL.Path = "/"

	jar, err := backend.NewJar()
	if err != nil {
		return nil, err
	}

	s := &Service{cfg: cfg, cookieURL: cookieURL, jar: jar, logger: logger}

	if last, err := Load(); err != nil {
		logger.Warn("could not read saved session", slog.Any("error", err))
	} else {
		s.last = last
	}
	if cookies, err := LoadCookies(); err != nil {
		logger.Warn("could not read saved cookies", slog.Any("error", err))
	} else if len(cookies) > 0 {
		jar.SetCookies(cookieURL, cookies)
	}

	api, err := backend.New(cfg.BaseURL, append([]backend.Option{
		backend.WithJar(jar),
		backend.WithTimeout(cfg.Timeout),
		backend.WithOrigin(cfg.Origin),
		backend.WithLogger(logger),
	}, opts...)...)
	if err != nil {
		return nil, err
	}

	var resolver session.Resolver = session.NewRemoteResolver(api)
	if cfg.DevBypass {
		resolver = session.NewStaticResolver(model.ParseRole(cfg.DevRole), logger)
	}

	s.session = session.New(api,
		session.WithResolver(s.recording(resolver)),
		session.WithLogger(logger),
	)
	if !cfg.DevBypass {
		s.session.Subscribe(s.persist)
	}
	return s, nil
}

// Session returns the controller all session operations go through.
func (s *Service) Session() *session.Controller { return s.session }

// LastKnown is the state saved by the previous invocation.
func (s *Service) LastKnown() State { return s.last }

// Resolve resolves the saved session and reports why it failed, if it did.
// The returned snapshot is never loading.
func (s *Service) Resolve(ctx context.Context) (session.Snapshot, error) {
	s.session.ResolveExistingSession(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Snapshot(), s.resolveErr
}

// Logout signs out remotely (best effort) and clears local credentials/state.
func (s *Service) Logout(ctx context.Context) error {
	s.session.SignOut(ctx)
	return Clear()
}

func (s *Service) recording(r session.Resolver) session.Resolver {
	return session.ResolverFunc(func(ctx context.Context) (*model.Identity, error) {
		id, err := r.Resolve(ctx)
		s.mu.Lock()
		s.resolveErr = err
		s.mu.Unlock()
		return id, err
	})
}

// persist mirrors a snapshot into the keychain. It runs after every applied
// change, including sign-up or sign-in before the saved session was resolved.
// A session that could not be resolved because the backend was unreachable
// keeps what was saved.
func (s *Service) persist(snap session.Snapshot) {
	if !snap.SignedIn() {
		if s.unreachable() {
			return
		}
		if err := Clear(); err != nil {
			s.logger.Warn("could not clear saved session", slog.Any("error", err))
		}
		return
	}

	if err := Save(StateFromSnapshot(snap)); err != nil {
		s.logger.Warn("could not save session", slog.Any("error", err))
	}
	if err := SaveCookies(s.jar.Cookies(s.cookieURL)); err != nil {
		s.logger.Warn("could not save cookies", slog.Any("error", err))
	}
}

// unreachable reports whether the last resolution failed without an HTTP response.
func (s *Service) unreachable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolveErr == nil {
		return false
	}
	var apiErr *backend.APIError
	return !errors.As(s.resolveErr, &apiErr)
}
