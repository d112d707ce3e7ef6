// ABOUTME: Session state machine: bootstrapping, authenticated, unauthenticated
// ABOUTME: Sole writer of session state; generation stamps discard stale results

package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/prestasi/prestasi-cli/internal/api"
	"github.com/prestasi/prestasi-cli/internal/credentials"
	"github.com/prestasi/prestasi-cli/internal/permissions"
)

var (
	// ErrNotAuthenticated is returned by operations that need a session user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSuperseded is returned when an operation's result arrived after a
	// newer state transition and was discarded.
	ErrSuperseded = errors.New("session state superseded")
)

// Snapshot is a point-in-time read of the session. Loading is true only
// until the one-time bootstrap resolves; IsAuthenticated is computed from
// User, never stored.
type Snapshot struct {
	User    *api.User
	Loading bool
}

// IsAuthenticated reports whether a user is present.
func (s Snapshot) IsAuthenticated() bool {
	return s.User != nil
}

// Controller owns the session state. All other components read snapshots or
// request transitions through its operations; the gateway only requests a
// forced transition via ForceExpire, it never mutates state directly.
type Controller struct {
	api    *api.Client
	creds  credentials.Store
	logger *slog.Logger

	mu           sync.Mutex
	user         *api.User
	loading      bool
	bootstrapped bool

	// gen increments on every state transition. Async operations capture it
	// at issue time and discard their result when it has moved on, so a
	// stale verify cannot resurrect a session the user logged out of.
	gen uint64
}

// New creates a controller in the Bootstrapping state.
func New(apiClient *api.Client, creds credentials.Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		api:     apiClient,
		creds:   creds,
		logger:  logger.With("component", "session"),
		loading: true,
	}
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{User: c.user, Loading: c.loading}
}

// Permissions resolves the current user's capability set. An absent user
// holds no capabilities.
func (c *Controller) Permissions() permissions.PermissionSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return permissions.PermissionSet{}
	}
	return permissions.Resolve(c.user.Role)
}

// Bootstrap resumes a session from the persisted credential. It runs the
// verify call at most once per process; repeated calls are no-ops. Without
// a stored credential no network call is made at all.
func (c *Controller) Bootstrap(ctx context.Context) error {
	c.mu.Lock()
	if c.bootstrapped {
		c.mu.Unlock()
		return nil
	}
	c.bootstrapped = true

	if _, ok := c.creds.Get(); !ok {
		c.logger.Debug("no stored credential, skipping verify")
		c.transitionLocked(nil)
		c.mu.Unlock()
		return nil
	}

	gen := c.gen
	c.mu.Unlock()

	user, err := c.api.Verify(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		// A login or logout happened while the verify was in flight; its
		// result no longer describes this session.
		c.logger.Debug("discarding stale bootstrap result")
		return nil
	}

	if err != nil {
		c.logger.Info("stored credential rejected", "error", err)
		if clearErr := c.creds.Clear(); clearErr != nil {
			c.logger.Error("clearing rejected credential", "error", clearErr)
		}
		c.transitionLocked(nil)
		return nil
	}

	c.logger.Info("session resumed", "username", user.Username, "role", string(user.Role))
	c.transitionLocked(user)
	return nil
}

// Login authenticates with the server. On success the returned credential
// is persisted and the session becomes authenticated. On failure the
// gateway's normalized error propagates unchanged and no transition occurs.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	resp, err := c.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		c.logger.Debug("discarding stale login result")
		return ErrSuperseded
	}

	if err := c.creds.Set(resp.AccessToken); err != nil {
		return err
	}
	user := resp.User
	c.logger.Info("logged in", "username", user.Username, "role", string(user.Role))
	c.transitionLocked(&user)
	return nil
}

// Logout ends the session locally. It never calls the server and always
// succeeds: the credential is cleared best-effort and the state resets.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.creds.Clear(); err != nil {
		c.logger.Error("clearing credential on logout", "error", err)
	}
	c.logger.Info("logged out")
	c.transitionLocked(nil)
}

// ForceExpire is the gateway-requested transition after a 401. Idempotent:
// expiring an already-unauthenticated session changes nothing.
func (c *Controller) ForceExpire() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil && !c.loading {
		return
	}
	c.logger.Info("session forcibly expired")
	c.transitionLocked(nil)
}

// RefreshUser re-fetches the authenticated user and atomically swaps the
// session's copy, e.g. after a profile edit. It never changes whether the
// session is authenticated; on failure the stale user data stays in place.
func (c *Controller) RefreshUser(ctx context.Context) error {
	c.mu.Lock()
	if c.user == nil {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	gen := c.gen
	c.mu.Unlock()

	user, err := c.api.Me(ctx)
	if err != nil {
		c.logger.Warn("profile refresh failed, keeping cached user", "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		c.logger.Debug("discarding stale profile refresh")
		return ErrSuperseded
	}

	c.user = user
	return nil
}

// transitionLocked applies a new resolved state. Every call supersedes any
// result still in flight. Caller must hold c.mu.
func (c *Controller) transitionLocked(user *api.User) {
	c.user = user
	c.loading = false
	c.gen++
}
