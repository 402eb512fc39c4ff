// Package auth owns the OAuth2 credential lifecycle for the Pipedrive API:
// the authorization-code exchange, transparent refresh of expiring access
// tokens, and persistence of the credential across restarts.
//
// The manager is an explicit state machine over
// {Unauthenticated, Authorizing, Authorized, Refreshing, Revoked}. Reads of
// the current token may proceed concurrently; at most one refresh is in
// flight at a time — concurrent callers observing an expiring token block
// behind the in-flight refresh and reuse its result. Refreshing twice
// concurrently risks the provider invalidating the first refresh token
// before it is consumed.
package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/crmbridge/pipedrive-mcp/internal/logging"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
)

// State is the credential lifecycle state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthorizing     State = "authorizing"
	StateAuthorized      State = "authorized"
	StateRefreshing      State = "refreshing"
	StateRevoked         State = "revoked"
)

// expirySkew is how long before the recorded expiry a token is treated as
// expired, covering clock drift and request latency.
const expirySkew = 60 * time.Second

// Manager owns the credential state machine.
type Manager struct {
	oauth  *oauth2.Config
	store  Store
	logger logging.Logger

	mu           chan struct{} // 1-buffered channel used as a context-aware mutex
	state        State
	cred         *Credential
	pendingState string        // OAuth state nonce for the in-progress consent flow
	inflight     chan struct{} // closed when the in-flight refresh settles
	refreshErr   *result.Error
}

// NewManager creates a Manager and loads any persisted credential, so an
// authorization survives a process restart.
func NewManager(oauthCfg *oauth2.Config, store Store, logger logging.Logger) *Manager {
	m := &Manager{
		oauth:  oauthCfg,
		store:  store,
		logger: logger,
		mu:     make(chan struct{}, 1),
		state:  StateUnauthenticated,
	}

	cred, err := store.Load()
	if err != nil {
		logger.Warn("failed to load persisted credential", "error", err)
	} else if cred != nil && cred.AccessToken != "" {
		m.cred = cred
		m.state = StateAuthorized
		logger.Debug("loaded persisted credential", "expires_at", cred.ExpiresAt)
	}
	return m
}

func (m *Manager) lock(ctx context.Context) error {
	select {
	case m.mu <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) unlock() { <-m.mu }

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu <- struct{}{}
	defer m.unlock()
	return m.state
}

// Status is a redacted snapshot of the credential lifecycle, safe to show
// to callers. It never includes token material.
type Status struct {
	State     State     `json:"state"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Scope     string    `json:"scope,omitempty"`
}

// Status returns the current redacted status.
func (m *Manager) Status() Status {
	m.mu <- struct{}{}
	defer m.unlock()

	st := Status{State: m.state}
	if m.cred != nil {
		st.ExpiresAt = m.cred.ExpiresAt
		st.Scope = m.cred.Scope
	}
	return st
}

// Begin starts an authorization cycle and returns the consent URL the user
// must visit, along with the state nonce embedded in it. Valid from any
// lifecycle state; an existing credential is kept until the exchange
// replaces it.
func (m *Manager) Begin() (authURL, state string) {
	m.mu <- struct{}{}
	defer m.unlock()

	state = uuid.NewString()
	m.pendingState = state
	if m.state == StateUnauthenticated || m.state == StateRevoked {
		m.state = StateAuthorizing
	}
	return m.oauth.AuthCodeURL(state), state
}

// Exchange completes the authorization cycle: it trades the authorization
// code for a credential, stores it and moves to Authorized. The state nonce
// must match the one issued by Begin when one is pending.
func (m *Manager) Exchange(ctx context.Context, code, state string) *result.Error {
	if err := m.lock(ctx); err != nil {
		return result.WrapErr(result.KindNetworkError, err, "authorization interrupted")
	}
	pending := m.pendingState
	m.unlock()

	if pending != "" && state != "" && state != pending {
		return result.Errorf(result.KindInvalidRequest, "authorization state mismatch")
	}

	tok, err := m.oauth.Exchange(ctx, code)
	if err != nil {
		return exchangeError(err, "authorization code exchange failed")
	}

	cred := credentialFromToken(tok)

	m.mu <- struct{}{}
	m.cred = cred
	m.state = StateAuthorized
	m.pendingState = ""
	m.unlock()

	if err := m.store.Save(cred); err != nil {
		m.logger.Warn("failed to persist credential", "error", err)
	}
	m.logger.Info("authorization complete", "expires_at", cred.ExpiresAt)
	return nil
}

// Token returns a valid access token, transparently refreshing an expiring
// one. It fails with an auth_required error when no authorization cycle has
// completed or the credential has been revoked, without any network I/O.
func (m *Manager) Token(ctx context.Context) (string, *result.Error) {
	refreshed := false
	for {
		if err := m.lock(ctx); err != nil {
			return "", result.WrapErr(result.KindNetworkError, err, "token request interrupted")
		}

		switch m.state {
		case StateUnauthenticated, StateAuthorizing:
			m.unlock()
			return "", result.Errorf(result.KindAuthRequired, "not authenticated: run the authorization flow first")
		case StateRevoked:
			m.unlock()
			return "", result.Errorf(result.KindAuthRequired, "authorization revoked: a fresh authorization cycle is required")
		case StateRefreshing:
			// Another caller owns the refresh. Wait for it to settle and
			// reuse its result rather than issuing a duplicate refresh call.
			done := m.inflight
			m.unlock()
			select {
			case <-done:
				refreshed = true
				continue
			case <-ctx.Done():
				return "", result.WrapErr(result.KindNetworkError, ctx.Err(), "token request interrupted")
			}
		case StateAuthorized:
			if !m.cred.Expired(expirySkew) {
				tok := m.cred.AccessToken
				m.unlock()
				return tok, nil
			}
			if refreshed && m.refreshErr != nil {
				// The refresh this caller waited for (or performed) failed;
				// surface its result instead of refreshing again.
				rerr := m.refreshErr
				m.unlock()
				return "", rerr
			}
			// This caller owns the refresh.
			refreshToken := m.cred.RefreshToken
			m.state = StateRefreshing
			m.inflight = make(chan struct{})
			m.refreshErr = nil
			m.unlock()

			m.refresh(ctx, refreshToken)
			refreshed = true
			continue
		}
	}
}

// refresh performs the single in-flight refresh call and settles the state
// machine. The old credential is replaced atomically; it is never handed
// out once replacement begins.
func (m *Manager) refresh(ctx context.Context, refreshToken string) {
	var (
		cred *Credential
		rerr *result.Error
	)

	if refreshToken == "" {
		rerr = result.Errorf(result.KindAuthRequired, "access token expired and no refresh token is available")
	} else {
		src := m.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
		tok, err := src.Token()
		if err != nil {
			rerr = exchangeError(err, "token refresh failed")
		} else {
			cred = credentialFromToken(tok)
			if cred.RefreshToken == "" {
				cred.RefreshToken = refreshToken
			}
		}
	}

	m.mu <- struct{}{}
	switch {
	case cred != nil:
		m.cred = cred
		m.state = StateAuthorized
	case rerr.Kind == result.KindAuthRequired:
		// The provider rejected the refresh token; the credential is dead.
		m.cred = nil
		m.state = StateRevoked
	default:
		// Transient failure: keep the expired credential so a later call
		// can retry the refresh.
		m.state = StateAuthorized
	}
	m.refreshErr = rerr
	close(m.inflight)
	m.unlock()

	if cred != nil {
		if err := m.store.Save(cred); err != nil {
			m.logger.Warn("failed to persist refreshed credential", "error", err)
		}
		m.logger.Debug("credential refreshed", "expires_at", cred.ExpiresAt)
		return
	}

	if rerr.Kind == result.KindAuthRequired {
		if err := m.store.Clear(); err != nil {
			m.logger.Warn("failed to clear revoked credential", "error", err)
		}
		m.logger.Warn("refresh token rejected, credential revoked")
	} else {
		m.logger.Warn("token refresh failed", "error", rerr)
	}
}

// Invalidate marks the current access token as expired so the next Token
// call refreshes it. Called when the upstream rejects a request with 401
// despite a locally-valid expiry.
func (m *Manager) Invalidate() {
	m.mu <- struct{}{}
	defer m.unlock()

	if m.state == StateAuthorized && m.cred != nil {
		m.cred.ExpiresAt = time.Now().Add(-time.Second)
	}
}

// Logout discards the credential and clears the persisted copy.
func (m *Manager) Logout() error {
	m.mu <- struct{}{}
	m.cred = nil
	m.state = StateUnauthenticated
	m.pendingState = ""
	m.unlock()

	return m.store.Clear()
}

func credentialFromToken(tok *oauth2.Token) *Credential {
	cred := &Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresAt:    tok.Expiry,
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		cred.Scope = scope
	}
	return cred
}

// exchangeError maps an oauth2 failure onto the dispatch taxonomy. A 4xx
// from the token endpoint (invalid_grant and friends) is irrecoverable and
// requires a fresh authorization; anything else is a network-level failure.
func exchangeError(err error, msg string) *result.Error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) && rerr.Response != nil &&
		rerr.Response.StatusCode >= http.StatusBadRequest && rerr.Response.StatusCode < http.StatusInternalServerError {
		if rerr.ErrorCode != "" {
			return result.HTTPErrorf(result.KindAuthRequired, rerr.Response.StatusCode, "%s: %s", msg, rerr.ErrorCode)
		}
		return result.HTTPErrorf(result.KindAuthRequired, rerr.Response.StatusCode, "%s", msg)
	}
	return result.WrapErr(result.KindNetworkError, err, "%s", msg)
}
