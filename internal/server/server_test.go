package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmbridge/pipedrive-mcp/internal/auth"
	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
	"github.com/crmbridge/pipedrive-mcp/internal/config"
	"github.com/crmbridge/pipedrive-mcp/internal/dispatch"
	"github.com/crmbridge/pipedrive-mcp/internal/logging"
	"github.com/crmbridge/pipedrive-mcp/internal/request"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
	"github.com/crmbridge/pipedrive-mcp/internal/transport"
)

type fakeTokens struct{ token string }

func (f *fakeTokens) Token(ctx context.Context) (string, *result.Error) { return f.token, nil }
func (f *fakeTokens) Invalidate()                                       {}

type fakeExec struct {
	status int
	body   string
}

func (f *fakeExec) Do(ctx context.Context, req *http.Request) (*transport.RawResponse, *result.Error) {
	return &transport.RawResponse{
		StatusCode: f.status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

type fakeAuth struct {
	status      auth.Status
	exchangeErr *result.Error
	loggedOut   bool
}

func (f *fakeAuth) Begin() (string, string) {
	return "https://oauth.pipedrive.example/authorize?state=n1", "n1"
}

func (f *fakeAuth) Exchange(ctx context.Context, code, state string) *result.Error {
	return f.exchangeErr
}

func (f *fakeAuth) Status() auth.Status { return f.status }

func (f *fakeAuth) Logout() error {
	f.loggedOut = true
	return nil
}

func testServer(t *testing.T, exec *fakeExec, authn Authenticator) *Server {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	builder, err := request.NewBuilder("https://api.pipedrive.example")
	require.NoError(t, err)

	d := dispatch.New(cat, &fakeTokens{token: "tok"}, builder, exec, logging.Nop())
	if authn == nil {
		authn = &fakeAuth{status: auth.Status{State: auth.StateUnauthenticated}}
	}
	return New(config.NewConfig(), d, authn, logging.Nop())
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestToolCount(t *testing.T) {
	s := testServer(t, &fakeExec{status: 200, body: `{}`}, nil)
	assert.Greater(t, s.ToolCount(), 100)
}

func TestCallTool_Authorize(t *testing.T) {
	s := testServer(t, &fakeExec{}, nil)

	res, err := s.CallTool(context.Background(), "pipedrive_authorize", nil)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Contains(t, out["authorization_url"], "https://oauth.pipedrive.example/authorize")
	assert.Equal(t, "n1", out["state"])
}

func TestCallTool_ExchangeCodeMissingArgs(t *testing.T) {
	s := testServer(t, &fakeExec{}, nil)

	res, err := s.CallTool(context.Background(), "pipedrive_exchange_code", map[string]any{"code": "abc"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "missing_parameter")
}

func TestCallTool_ExchangeCodeSuccess(t *testing.T) {
	s := testServer(t, &fakeExec{}, &fakeAuth{})

	res, err := s.CallTool(context.Background(), "pipedrive_exchange_code",
		map[string]any{"code": "abc", "state": "n1"})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "authorized")
}

func TestCallTool_AuthStatusRedacted(t *testing.T) {
	s := testServer(t, &fakeExec{}, &fakeAuth{status: auth.Status{State: auth.StateAuthorized, Scope: "deals"}})

	res, err := s.CallTool(context.Background(), "pipedrive_auth_status", nil)
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "authorized")
	assert.NotContains(t, text, "token")
}

func TestCallTool_Logout(t *testing.T) {
	fa := &fakeAuth{}
	s := testServer(t, &fakeExec{}, fa)

	res, err := s.CallTool(context.Background(), "pipedrive_logout", nil)
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.True(t, fa.loggedOut)
}

func TestCallTool_EndpointSuccess(t *testing.T) {
	s := testServer(t, &fakeExec{status: 200, body: `{"success":true,"data":{"id":42}}`}, nil)

	res, err := s.CallTool(context.Background(), "deals_get_details", map[string]any{"id": 42})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out struct {
		StatusCode int             `json:"status_code"`
		Body       json.RawMessage `json:"body"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, 200, out.StatusCode)
	assert.JSONEq(t, `{"success":true,"data":{"id":42}}`, string(out.Body))
}

func TestCallTool_EndpointFailureCarriesKind(t *testing.T) {
	s := testServer(t, &fakeExec{status: 404, body: `{"success":false,"error":"Deal not found"}`}, nil)

	res, err := s.CallTool(context.Background(), "deals_get_details", map[string]any{"id": 42})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	var out struct {
		Kind      string `json:"kind"`
		Retryable bool   `json:"retryable"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, "not_found", out.Kind)
	assert.False(t, out.Retryable)
	assert.Contains(t, out.Message, "Deal not found")
}

func TestCallTool_UnknownTool(t *testing.T) {
	s := testServer(t, &fakeExec{}, nil)

	_, err := s.CallTool(context.Background(), "no_such_tool", nil)
	assert.Error(t, err)
}

func TestCallTool_BinaryDownloadBase64(t *testing.T) {
	s := testServer(t, &fakeExec{status: 200, body: "binary-bytes"}, nil)

	res, err := s.CallTool(context.Background(), "files_download", map[string]any{"id": 7})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out struct {
		ContentBase64 string `json:"content_base64"`
		SizeBytes     int    `json:"size_bytes"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))

	data, derr := base64.StdEncoding.DecodeString(out.ContentBase64)
	require.NoError(t, derr)
	assert.Equal(t, "binary-bytes", string(data))
	assert.Equal(t, len("binary-bytes"), out.SizeBytes)
}

func TestEndpointInputSchema(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	desc, lookupErr := cat.Lookup("deals_get_details")
	require.Nil(t, lookupErr)

	var schema struct {
		Type       string                    `json:"type"`
		Properties map[string]map[string]any `json:"properties"`
		Required   []string                  `json:"required"`
	}
	require.NoError(t, json.Unmarshal(endpointInputSchema(desc), &schema))

	assert.Equal(t, "object", schema.Type)
	assert.Contains(t, schema.Required, "id")
	assert.Equal(t, "integer", schema.Properties["id"]["type"])
}
