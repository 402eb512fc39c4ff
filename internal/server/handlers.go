package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crmbridge/pipedrive-mcp/internal/result"
)

const (
	toolAuthorize    = "pipedrive_authorize"
	toolExchangeCode = "pipedrive_exchange_code"
	toolAuthStatus   = "pipedrive_auth_status"
	toolLogout       = "pipedrive_logout"
)

var authToolNames = []string{toolAuthorize, toolExchangeCode, toolAuthStatus, toolLogout}

// registerAuthTools registers the OAuth lifecycle tools.
func (s *Server) registerAuthTools() {
	s.mcpServer.AddTool(
		&mcp.Tool{
			Name:         toolAuthorize,
			Description:  "Start the Pipedrive OAuth flow. Returns the authorization URL the user must open in a browser.",
			InputSchema:  emptyInputSchema,
			OutputSchema: authorizeOutputSchema,
		},
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleAuthorize(ctx)
		},
	)

	s.mcpServer.AddTool(
		&mcp.Tool{
			Name:         toolExchangeCode,
			Description:  "Complete the Pipedrive OAuth flow with the code and state from the callback URL.",
			InputSchema:  exchangeCodeInputSchema,
			OutputSchema: statusOutputSchema,
		},
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var args map[string]any
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, err
			}
			return s.handleExchangeCode(ctx, args)
		},
	)

	s.mcpServer.AddTool(
		&mcp.Tool{
			Name:         toolAuthStatus,
			Description:  "Report the current Pipedrive authorization state. Never returns token material.",
			InputSchema:  emptyInputSchema,
			OutputSchema: authStatusOutputSchema,
		},
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleAuthStatus(ctx)
		},
	)

	s.mcpServer.AddTool(
		&mcp.Tool{
			Name:         toolLogout,
			Description:  "Discard the stored Pipedrive credential.",
			InputSchema:  emptyInputSchema,
			OutputSchema: statusOutputSchema,
		},
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleLogout(ctx)
		},
	)
}

// registerCatalogTools registers one MCP tool per catalog endpoint.
func (s *Server) registerCatalogTools() {
	for _, desc := range s.dispatcher.Catalog().Tools() {
		tool := desc.Tool
		s.mcpServer.AddTool(
			&mcp.Tool{
				Name:         tool,
				Description:  desc.Description,
				InputSchema:  endpointInputSchema(desc),
				OutputSchema: endpointOutputSchema,
			},
			func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				var args map[string]any
				if len(req.Params.Arguments) > 0 {
					if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
						return nil, err
					}
				}
				return s.handleEndpoint(ctx, tool, args)
			},
		)
	}
}

func (s *Server) handleAuthorize(ctx context.Context) (*mcp.CallToolResult, error) {
	authURL, state := s.auth.Begin()
	return toCallToolResult(map[string]any{
		"authorization_url": authURL,
		"state":             state,
	})
}

func (s *Server) handleExchangeCode(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	code, _ := args["code"].(string)
	state, _ := args["state"].(string)
	if code == "" || state == "" {
		return errorResult(result.Errorf(result.KindMissingParameter, "code and state are required")), nil
	}

	if err := s.auth.Exchange(ctx, code, state); err != nil {
		return errorResult(err), nil
	}
	return toCallToolResult(map[string]any{"status": "authorized"})
}

func (s *Server) handleAuthStatus(ctx context.Context) (*mcp.CallToolResult, error) {
	return toCallToolResult(s.auth.Status())
}

func (s *Server) handleLogout(ctx context.Context) (*mcp.CallToolResult, error) {
	if err := s.auth.Logout(); err != nil {
		s.logger.Warn("failed to clear stored credential", "error", err)
	}
	return toCallToolResult(map[string]any{"status": "logged_out"})
}

// handleEndpoint runs one catalog tool through the dispatcher and renders
// the outcome as a tool result.
func (s *Server) handleEndpoint(ctx context.Context, tool string, args map[string]any) (*mcp.CallToolResult, error) {
	res := s.dispatcher.Invoke(ctx, tool, args)
	if !res.OK() {
		return errorResult(res.Err), nil
	}

	if res.Stream != nil {
		return streamResult(res)
	}
	return toCallToolResult(res)
}

// streamResult buffers a binary download and returns it base64-encoded.
// The MCP content model has no streaming channel, so the bytes have to be
// materialized at this edge.
func streamResult(res *result.Result) (*mcp.CallToolResult, error) {
	defer res.Stream.Close()

	data, err := io.ReadAll(res.Stream)
	if err != nil {
		return errorResult(result.WrapErr(result.KindNetworkError, err, "download interrupted")), nil
	}

	return toCallToolResult(map[string]any{
		"status_code":    res.StatusCode,
		"content_base64": base64.StdEncoding.EncodeToString(data),
		"size_bytes":     len(data),
	})
}

// errorResult creates an error CallToolResult carrying the failure kind so
// the caller can tell a retryable failure from a permanent one.
func errorResult(err *result.Error) *mcp.CallToolResult {
	payload, merr := json.Marshal(map[string]any{
		"kind":        string(err.Kind),
		"http_status": err.HTTPStatus,
		"retryable":   err.Retryable(),
		"retry_after": err.RetryAfter,
		"message":     err.Message,
	})
	if merr != nil {
		payload = []byte(err.Error())
	}

	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}
}

// toCallToolResult converts any output to a CallToolResult with JSON text content.
func toCallToolResult(output any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(output)
	if err != nil {
		return errorResult(result.WrapErr(result.KindProtocolError, err, "failed to encode tool result")), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}
