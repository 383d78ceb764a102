// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/99designs/keyring"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/cli/internal/auth"
	"learnhub/cli/internal/config"
	"learnhub/cli/internal/keychain"
	"learnhub/cli/internal/model"
)

// fakeBackend records what the CLI sent to the Laravel backend.
type fakeBackend struct {
	mu      sync.Mutex
	updates []map[string]any
	logins  int
}

func (f *fakeBackend) Updates() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.updates...)
}

func (f *fakeBackend) Logins() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logins
}

// setupCLI isolates config and keychain and points the CLI at a fake backend.
func setupCLI(t *testing.T) *fakeBackend {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	keychain.SetManager(keychain.NewManagerWithRing(keyring.NewArrayKeyring(nil)))
	t.Cleanup(func() {
		keychain.SetManager(nil)
		loginEmail, registerEmail, registerName = "", "", ""
	})

	fb := &fakeBackend{}
	profile := map[string]any{"id": 3, "user_id": 1, "role": "learner", "headline": ""}
	user := func() map[string]any {
		return map[string]any{"id": 1, "name": "Ada", "email": "a@b.com", "profile": profile}
	}
	reply := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	authed := func(r *http.Request) bool {
		c, err := r.Cookie("laravel_session")
		return err == nil && c.Value == "ok"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sanctum/csrf-cookie", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "x", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != body["password_confirmation"] {
			reply(w, http.StatusUnprocessableEntity, map[string]any{"message": "The password confirmation does not match."})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "laravel_session", Value: "ok", Path: "/"})
		reply(w, http.StatusCreated, user())
	})
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.logins++
		fb.mu.Unlock()
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			reply(w, http.StatusUnprocessableEntity, map[string]any{
				"message": "These credentials do not match our records.",
				"errors":  map[string]any{"email": []any{"These credentials do not match our records."}},
			})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "laravel_session", Value: "ok", Path: "/"})
		reply(w, http.StatusOK, user())
	})
	mux.HandleFunc("GET /api/user", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			reply(w, http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})
			return
		}
		reply(w, http.StatusOK, map[string]any{"data": user()})
	})
	mux.HandleFunc("PUT /api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		fb.mu.Lock()
		fb.updates = append(fb.updates, body)
		fb.mu.Unlock()
		for k, v := range body {
			profile[k] = v
		}
		reply(w, http.StatusOK, profile)
	})
	mux.HandleFunc("POST /api/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Setenv("LEARNHUB_BASE_URL", srv.URL)
	return fb
}

func run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return rootCmd.Execute()
}

func TestLoginWhoamiProfileLogout(t *testing.T) {
	fb := setupCLI(t)

	require.NoError(t, run(t, "secret\n", "login", "--email", "a@b.com"))
	st, err := auth.Load()
	require.NoError(t, err)
	assert.True(t, st.SignedIn)
	assert.Equal(t, "a@b.com", st.Account)

	// The saved cookie is enough for a new invocation.
	require.NoError(t, run(t, "", "whoami"))
	require.NoError(t, run(t, "", "login"), "already signed in must not prompt")

	require.NoError(t, run(t, "", "profile", "set", "--headline", "Go dev", "--role", "pengajar"))
	updates := fb.Updates()
	require.Len(t, updates, 1)
	assert.Equal(t, map[string]any{"headline": "Go dev", "role": "instructor"}, updates[0])
	st, err = auth.Load()
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, st.Role)

	require.NoError(t, run(t, "", "logout"))
	st, err = auth.Load()
	require.NoError(t, err)
	assert.Equal(t, auth.State{}, st)
}

func TestRegisterThenWhoami(t *testing.T) {
	setupCLI(t)

	require.NoError(t, run(t, "secret\nsecret\n", "register", "--email", "a@b.com", "--name", "Ada"))
	st, err := auth.Load()
	require.NoError(t, err)
	assert.True(t, st.SignedIn)
	assert.Equal(t, "a@b.com", st.Account)
	cookies, err := auth.LoadCookies()
	require.NoError(t, err)
	assert.NotEmpty(t, cookies)

	// A later invocation starts from the keychain alone.
	svc, _, err := newService()
	require.NoError(t, err)
	snap, err := svc.Resolve(t.Context())
	require.NoError(t, err)
	require.True(t, snap.SignedIn())
	assert.Equal(t, "a@b.com", snap.Identity.Email)
	require.NoError(t, run(t, "", "whoami"))
}

func TestLogin_DevBypassStillSignsIn(t *testing.T) {
	fb := setupCLI(t)
	t.Setenv("LEARNHUB_DEV_BYPASS", "true")

	require.NoError(t, run(t, "secret\n", "login", "--email", "a@b.com"))
	assert.Equal(t, 1, fb.Logins(), "bypass identity must not short-circuit login")
}

func TestLogin_WrongPasswordIsReported(t *testing.T) {
	setupCLI(t)

	err := run(t, "nope\n", "login", "--email", "a@b.com")
	assert.ErrorIs(t, err, errReported)

	st, err := auth.Load()
	require.NoError(t, err)
	assert.False(t, st.SignedIn)
}

func TestProfileSet_RequiresSession(t *testing.T) {
	setupCLI(t)

	err := run(t, "", "profile", "set", "--bio", "hello")
	assert.ErrorIs(t, err, errReported)
}

func TestProfileUpdateFromFlags(t *testing.T) {
	newCmd := func(args ...string) *cobra.Command {
		c := &cobra.Command{}
		c.Flags().StringVar(&profileFullName, "full-name", "", "")
		c.Flags().StringVar(&profileHeadline, "headline", "", "")
		c.Flags().StringVar(&profileBio, "bio", "", "")
		c.Flags().StringVar(&profileRole, "role", "", "")
		require.NoError(t, c.Flags().Parse(args))
		return c
	}

	_, err := profileUpdateFromFlags(newCmd())
	assert.Error(t, err)

	_, err = profileUpdateFromFlags(newCmd("--role", "moderator"))
	assert.ErrorContains(t, err, "unknown role")

	u, err := profileUpdateFromFlags(newCmd("--bio", ""))
	require.NoError(t, err)
	require.NotNil(t, u.Bio)
	assert.Equal(t, "", *u.Bio)
	assert.Nil(t, u.Headline)
}

func TestConfigSetThenShow(t *testing.T) {
	setupCLI(t)

	require.NoError(t, run(t, "", "config", "set", "timeout", "30s"))
	cfg, err := config.LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "30s", cfg.Timeout.String())

	require.NoError(t, run(t, "", "config", "show"))
	assert.Error(t, run(t, "", "config", "set", "colour", "blue"))
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "learnhub "+Version+"\n", out.String())
}
