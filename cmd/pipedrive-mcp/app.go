package main

import (
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"github.com/crmbridge/pipedrive-mcp/internal/auth"
	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
	"github.com/crmbridge/pipedrive-mcp/internal/config"
	"github.com/crmbridge/pipedrive-mcp/internal/dispatch"
	"github.com/crmbridge/pipedrive-mcp/internal/logging"
	"github.com/crmbridge/pipedrive-mcp/internal/request"
	"github.com/crmbridge/pipedrive-mcp/internal/server"
	"github.com/crmbridge/pipedrive-mcp/internal/transport"
)

// app bundles the wired-up pieces the commands share.
type app struct {
	cfg    *config.Config
	auth   *auth.Manager
	server *server.Server
	logger logging.Logger
}

// buildApp loads the config and assembles the full stack.
func buildApp() (*app, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewFromEnv()

	var store auth.Store
	if cfg.TokenPath != "" {
		store = auth.NewFileStoreWithPath(cfg.TokenPath)
	} else {
		store = auth.NewFileStore()
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.AuthURL,
			TokenURL: cfg.TokenURL,
		},
	}
	mgr := auth.NewManager(oauthCfg, store, logger)

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("loading endpoint catalog: %w", err)
	}

	builder, err := request.NewBuilder(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base-url: %w", err)
	}

	exec := transport.NewExecutor(cfg.Timeout, cfg.MaxRetries, logger)
	d := dispatch.New(cat, mgr, builder, exec, logger)

	return &app{
		cfg:    cfg,
		auth:   mgr,
		server: server.New(cfg, d, mgr, logger),
		logger: logger,
	}, nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
