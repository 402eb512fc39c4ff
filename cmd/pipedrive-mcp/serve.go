package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func cmdServe(args []string) {
	listen := ""
	showHelp := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--listen", "-l":
			if i+1 < len(args) {
				listen = args[i+1]
				i++
			}
		case "--help", "-h":
			showHelp = true
		}
	}

	if showHelp {
		printServeUsage()
		return
	}

	a, err := buildApp()
	if err != nil {
		fatal("Error: %v", err)
	}

	if listen == "" {
		listen = a.cfg.Listen
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if listen != "" {
		if err := a.server.RunHTTP(ctx, listen); err != nil {
			fatal("Server error: %v", err)
		}
	} else {
		if err := a.server.RunStdio(ctx); err != nil {
			fatal("Server error: %v", err)
		}
	}
}

func printServeUsage() {
	fmt.Print(`pipedrive-mcp serve - Start the MCP server

Usage:
  pipedrive-mcp serve [options]

Options:
  --listen, -l ADDR  Run with SSE/HTTP transport on ADDR, e.g. :8080
                     (default: stdio transport)
  --help, -h         Show this help

Examples:
  pipedrive-mcp serve                  # Run with stdio transport
  pipedrive-mcp serve --listen :8080   # Run with HTTP/SSE on port 8080

Configuration:
  Settings are merged from:
  1. User config: ~/.config/pipedrive-mcp/config.kdl
  2. Project config: .pipedrive-mcp.kdl (in current directory)
  3. PIPEDRIVE_* environment variables

  Later sources override earlier ones.
`)
}
