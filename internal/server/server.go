// Package server exposes the dispatch engine over the Model Context
// Protocol. Every catalog endpoint becomes one MCP tool, alongside a small
// set of tools that drive the OAuth flow.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crmbridge/pipedrive-mcp/internal/auth"
	"github.com/crmbridge/pipedrive-mcp/internal/config"
	"github.com/crmbridge/pipedrive-mcp/internal/dispatch"
	"github.com/crmbridge/pipedrive-mcp/internal/logging"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
)

const (
	serverName    = "pipedrive-mcp"
	serverVersion = "0.3.0"
)

// Authenticator drives the OAuth lifecycle. Implemented by auth.Manager.
type Authenticator interface {
	Begin() (authURL, state string)
	Exchange(ctx context.Context, code, state string) *result.Error
	Status() auth.Status
	Logout() error
}

// Server is the pipedrive-mcp server.
type Server struct {
	mcpServer  *mcp.Server
	dispatcher *dispatch.Dispatcher
	auth       Authenticator
	config     *config.Config
	logger     logging.Logger
}

// New creates a Server wired to the given dispatcher and authenticator.
func New(cfg *config.Config, d *dispatch.Dispatcher, authn Authenticator, logger logging.Logger) *Server {
	s := &Server{
		dispatcher: d,
		auth:       authn,
		config:     cfg,
		logger:     logger,
	}

	s.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		&mcp.ServerOptions{
			Capabilities: &mcp.ServerCapabilities{
				Tools: &mcp.ToolCapabilities{},
			},
		},
	)

	s.registerAuthTools()
	s.registerCatalogTools()

	return s
}

// RunStdio runs the server using stdio transport.
func (s *Server) RunStdio(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// RunHTTP runs the server using HTTP/SSE transport.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	sseHandler := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/", sseHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	s.logger.Info("pipedrive-mcp server running", "addr", addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// ToolCount reports how many tools the server registered.
func (s *Server) ToolCount() int {
	return s.dispatcher.Catalog().Len() + len(authToolNames)
}

// CallTool invokes a tool directly, bypassing the MCP transport. Used by
// the CLI and by tests.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	switch name {
	case toolAuthorize:
		return s.handleAuthorize(ctx)
	case toolExchangeCode:
		return s.handleExchangeCode(ctx, args)
	case toolAuthStatus:
		return s.handleAuthStatus(ctx)
	case toolLogout:
		return s.handleLogout(ctx)
	}

	if _, lookupErr := s.dispatcher.Catalog().Lookup(name); lookupErr != nil {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	return s.handleEndpoint(ctx, name, args)
}
