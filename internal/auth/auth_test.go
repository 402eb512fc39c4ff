package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/crmbridge/pipedrive-mcp/internal/logging"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
)

// tokenServer is a fake OAuth2 provider. It counts token endpoint hits per
// grant type and can be told to reject refreshes.
type tokenServer struct {
	srv *httptest.Server

	exchanges     atomic.Int64
	refreshes     atomic.Int64
	rejectRefresh bool
	accessToken   string
}

func newTokenServer(t *testing.T) *tokenServer {
	t.Helper()
	ts := &tokenServer{accessToken: "fresh-token"}
	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")

		switch r.Form.Get("grant_type") {
		case "authorization_code":
			ts.exchanges.Add(1)
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  ts.accessToken,
				"refresh_token": "refresh-1",
				"token_type":    "Bearer",
				"expires_in":    3600,
				"scope":         "deals:full",
			})
		case "refresh_token":
			ts.refreshes.Add(1)
			if ts.rejectRefresh {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]any{"error": "invalid_grant"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  ts.accessToken,
				"refresh_token": "refresh-2",
				"token_type":    "Bearer",
				"expires_in":    3600,
			})
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"error": "unsupported_grant_type"})
		}
	}))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *tokenServer) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8765/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:   ts.srv.URL + "/oauth/authorize",
			TokenURL:  ts.srv.URL + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func newTestManager(t *testing.T, ts *tokenServer, cred *Credential) *Manager {
	t.Helper()
	store := NewFileStoreWithPath(filepath.Join(t.TempDir(), "credentials.json"))
	if cred != nil {
		require.NoError(t, store.Save(cred))
	}
	return NewManager(ts.oauthConfig(), store, logging.Nop())
}

func TestToken_Unauthenticated_NoNetworkCall(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, nil)

	_, err := m.Token(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, result.KindAuthRequired, err.Kind)
	assert.Zero(t, ts.exchanges.Load())
	assert.Zero(t, ts.refreshes.Load())
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestBegin_ProducesConsentURL(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, nil)

	authURL, state := m.Begin()
	require.NotEmpty(t, state)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "/oauth/authorize", parsed.Path)
	assert.Equal(t, "client-id", parsed.Query().Get("client_id"))
	assert.Equal(t, state, parsed.Query().Get("state"))
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.Equal(t, StateAuthorizing, m.State())
}

func TestExchange_CompletesAuthorization(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, nil)

	_, state := m.Begin()
	require.Nil(t, m.Exchange(context.Background(), "auth-code", state))
	assert.Equal(t, StateAuthorized, m.State())

	tok, err := m.Token(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "fresh-token", tok)
	assert.EqualValues(t, 1, ts.exchanges.Load())
	assert.Zero(t, ts.refreshes.Load())

	st := m.Status()
	assert.Equal(t, "deals:full", st.Scope)
	assert.False(t, st.ExpiresAt.IsZero())
}

func TestExchange_StateMismatch(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, nil)

	m.Begin()
	err := m.Exchange(context.Background(), "auth-code", "forged-state")
	require.NotNil(t, err)
	assert.Equal(t, result.KindInvalidRequest, err.Kind)
	assert.Zero(t, ts.exchanges.Load())
}

func TestNewManager_LoadsPersistedCredential(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, &Credential{
		AccessToken:  "persisted-token",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	tok, err := m.Token(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "persisted-token", tok)
	assert.Zero(t, ts.refreshes.Load())
}

func TestToken_RefreshesExpiredCredential(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, &Credential{
		AccessToken:  "stale-token",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(-time.Minute),
	})

	tok, err := m.Token(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "fresh-token", tok)
	assert.EqualValues(t, 1, ts.refreshes.Load())
	assert.Equal(t, StateAuthorized, m.State())
}

func TestToken_ConcurrentCallersShareOneRefresh(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, &Credential{
		AccessToken:  "stale-token",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(-time.Minute),
	})

	const callers = 25
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]*result.Error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = m.Token(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.Nil(t, errs[i], "caller %d", i)
		assert.Equal(t, "fresh-token", tokens[i], "caller %d", i)
	}
	assert.EqualValues(t, 1, ts.refreshes.Load(), "exactly one upstream refresh call")
}

func TestToken_InvalidGrantRevokesCredential(t *testing.T) {
	ts := newTokenServer(t)
	ts.rejectRefresh = true
	store := NewFileStoreWithPath(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, store.Save(&Credential{
		AccessToken:  "stale-token",
		RefreshToken: "dead-refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}))
	m := NewManager(ts.oauthConfig(), store, logging.Nop())

	_, err := m.Token(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, result.KindAuthRequired, err.Kind)
	assert.Equal(t, StateRevoked, m.State())

	// The persisted credential is gone.
	cred, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, cred)

	// Subsequent calls fail fast with no further network traffic.
	before := ts.refreshes.Load()
	_, err = m.Token(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, result.KindAuthRequired, err.Kind)
	assert.Equal(t, before, ts.refreshes.Load())
}

func TestToken_MissingRefreshToken(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, &Credential{
		AccessToken: "stale-token",
		ExpiresAt:   time.Now().Add(-time.Minute),
	})

	_, err := m.Token(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, result.KindAuthRequired, err.Kind)
	assert.Zero(t, ts.refreshes.Load())
}

func TestInvalidate_ForcesRefreshOnNextToken(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, &Credential{
		AccessToken:  "current-token",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	m.Invalidate()
	tok, err := m.Token(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "fresh-token", tok)
	assert.EqualValues(t, 1, ts.refreshes.Load())
}

func TestLogout_ClearsCredential(t *testing.T) {
	ts := newTokenServer(t)
	m := newTestManager(t, ts, &Credential{
		AccessToken:  "current-token",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	require.NoError(t, m.Logout())
	assert.Equal(t, StateUnauthenticated, m.State())

	_, err := m.Token(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, result.KindAuthRequired, err.Kind)
}

func TestCredential_Expired(t *testing.T) {
	assert.False(t, (&Credential{}).Expired(time.Minute), "no expiry recorded")
	assert.False(t, (&Credential{ExpiresAt: time.Now().Add(time.Hour)}).Expired(time.Minute))
	assert.True(t, (&Credential{ExpiresAt: time.Now().Add(30 * time.Second)}).Expired(time.Minute), "within skew")
	assert.True(t, (&Credential{ExpiresAt: time.Now().Add(-time.Hour)}).Expired(time.Minute))
}
