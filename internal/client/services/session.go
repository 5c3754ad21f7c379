// Package services contains the application services of the TruthGuard
// client. This file defines the session manager: the single source of truth
// for "who is the current user" and the sole authority for attaching and
// removing authorization on outbound calls.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/truthguard/truthguard/internal/client/api"
	"github.com/truthguard/truthguard/internal/client/models"
	sessionrepo "github.com/truthguard/truthguard/internal/client/repositories/session"
	"github.com/truthguard/truthguard/internal/logging"
)

// SessionState is the lifecycle state of the session manager.
//
// Transitions:
//
//	Uninitialized -> Bootstrapping -> {Authenticated | Unauthenticated}
//	Authenticated -> Unauthenticated   (logout or 401)
//	Unauthenticated -> Authenticated   (successful login/register only)
//
// A 401 during Bootstrapping resolves to Unauthenticated, never to an
// error state.
type SessionState string

const (
	StateUninitialized   SessionState = "uninitialized"
	StateBootstrapping   SessionState = "bootstrapping"
	StateAuthenticated   SessionState = "authenticated"
	StateUnauthenticated SessionState = "unauthenticated"
)

// AuthSession is the derived, read-only view handed to consumers. UI logic
// gates on IsAuthenticated; nothing outside the manager sees the raw token.
type AuthSession struct {
	IsAuthenticated bool
	User            *models.UserProfile
}

// SessionManager owns the credential. Every mutation writes through to the
// durable store in the same call, so the in-memory credential and the
// persisted copy never diverge.
type SessionManager struct {
	client api.Client
	repo   sessionrepo.Repository
	log    logging.Logger

	state SessionState
	user  *models.UserProfile
	epoch uint64

	onInvalidated []func()
}

// NewSessionManager wires the manager to the API client and the local store,
// and subscribes it as the single listener for transport-level 401s.
func NewSessionManager(client api.Client, repo sessionrepo.Repository, log logging.Logger) *SessionManager {
	m := &SessionManager{
		client: client,
		repo:   repo,
		log:    log,
		state:  StateUninitialized,
	}
	client.OnUnauthorized(m.handleUnauthorized)
	return m
}

// State returns the current lifecycle state.
func (m *SessionManager) State() SessionState { return m.state }

// Session returns the derived authentication view.
func (m *SessionManager) Session() AuthSession {
	return AuthSession{
		IsAuthenticated: m.state == StateAuthenticated,
		User:            m.user,
	}
}

// Epoch identifies the current session generation. It increases on every
// transition into or out of Authenticated; in-flight responses issued under
// an older epoch must be discarded instead of committed.
func (m *SessionManager) Epoch() uint64 { return m.epoch }

// OnInvalidated registers a subscriber notified after a forced sign-out
// (a 401 on a token-carrying request). Navigation back to the entry point
// lives in subscribers, not in transport code.
func (m *SessionManager) OnInvalidated(fn func()) {
	m.onInvalidated = append(m.onInvalidated, fn)
}

// Bootstrap restores a persisted session at process start. With no stored
// token it resolves to Unauthenticated without touching the network. With a
// token it issues a single identity probe; any failure clears local state
// and resolves to Unauthenticated silently, because an expired token is an
// expected steady-state condition, not a fault. Never retries.
func (m *SessionManager) Bootstrap(ctx context.Context) error {
	m.state = StateBootstrapping

	token, err := m.repo.Get(ctx, sessionrepo.KeyToken)
	if err != nil {
		m.log.Warn(ctx, "session store read failed", "error", err)
	}
	if len(token) == 0 {
		m.state = StateUnauthenticated
		return nil
	}

	m.client.SetToken(string(token))

	user, err := m.client.Me(ctx)
	if err != nil {
		m.log.Debug(ctx, "stored credential rejected, starting unauthenticated", "error", err)
		m.clearLocal(ctx)
		m.state = StateUnauthenticated
		return nil
	}

	// Refresh the persisted profile; profile data may have changed
	// server-side since the last run.
	if data, err := json.Marshal(user); err == nil {
		if err := m.repo.Set(ctx, sessionrepo.KeyUser, data); err != nil {
			m.log.Warn(ctx, "failed to refresh stored profile", "error", err)
		}
	}

	m.user = user
	m.state = StateAuthenticated
	m.epoch++
	m.log.Info(ctx, "session restored", "user", user.Email)
	return nil
}

// Login authenticates with the service. Credentials are passed through
// uninterpreted; the service is the sole validator. On failure nothing is
// mutated and the service's rejection is returned for display.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := m.commit(ctx, resp); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "logged in", "user", resp.User.Email)
	return m.user, nil
}

// Register creates an account. The password policy is enforced locally
// before any network call; only the first violated rule is reported.
func (m *SessionManager) Register(ctx context.Context, email, password, name string) (*models.UserProfile, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	resp, err := m.client.Register(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	if err := m.commit(ctx, resp); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "registered", "user", resp.User.Email)
	return m.user, nil
}

// commit persists the credential (token and profile atomically), attaches
// the token to the transport, and transitions to Authenticated.
func (m *SessionManager) commit(ctx context.Context, resp *api.AuthResponse) error {
	data, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	err = m.repo.SetAll(ctx, map[string][]byte{
		sessionrepo.KeyToken: []byte(resp.Token),
		sessionrepo.KeyUser:  data,
	})
	if err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	user := resp.User
	m.client.SetToken(resp.Token)
	m.user = &user
	m.state = StateAuthenticated
	m.epoch++
	return nil
}

// Logout is unconditional and never fails: it clears the persisted token and
// profile, drops the in-memory credential, removes authorization from the
// transport, and transitions to Unauthenticated.
func (m *SessionManager) Logout(ctx context.Context) {
	wasAuthenticated := m.state == StateAuthenticated
	m.clearLocal(ctx)
	m.state = StateUnauthenticated
	if wasAuthenticated {
		m.epoch++
	}
	m.log.Info(ctx, "logged out")
}

// handleUnauthorized reacts to a 401 on any token-carrying request. The
// clearing sequence is identical to Logout; subscribers are then notified so
// the UI can return to the entry point. Not scoped to the call site that
// triggered it: a rejected token is untrustworthy everywhere.
func (m *SessionManager) handleUnauthorized() {
	ctx := context.Background()

	wasAuthenticated := m.state == StateAuthenticated
	m.clearLocal(ctx)
	m.state = StateUnauthenticated
	if wasAuthenticated {
		m.epoch++
		m.log.Warn(ctx, "credential rejected by service, session invalidated")
		for _, fn := range m.onInvalidated {
			fn()
		}
	}
}

// clearLocal removes the credential from the store, memory, and transport.
// Store errors are logged, not surfaced; local invalidation must not fail.
func (m *SessionManager) clearLocal(ctx context.Context) {
	if err := m.repo.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear session store", "error", err)
	}
	m.client.ClearToken()
	m.user = nil
}
