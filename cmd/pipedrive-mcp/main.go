package main

import (
	"fmt"
	"os"
)

const version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "auth":
		if len(os.Args) < 3 {
			printAuthUsage()
			return
		}
		switch os.Args[2] {
		case "login":
			cmdAuthLogin(os.Args[3:])
		case "exchange":
			cmdAuthExchange(os.Args[3:])
		case "status":
			cmdAuthStatus(os.Args[3:])
		case "logout":
			cmdAuthLogout(os.Args[3:])
		case "help", "-h", "--help":
			printAuthUsage()
		default:
			printAuthUsage()
			os.Exit(1)
		}
	case "tools":
		cmdTools(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("pipedrive-mcp version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`pipedrive-mcp - MCP server for the Pipedrive API

Usage:
  pipedrive-mcp <command> [options]

Commands:
  serve          Start the MCP server
  auth login     Print the OAuth authorization URL
  auth exchange  Complete the OAuth flow with the callback code
  auth status    Show the current authorization state
  auth logout    Discard the stored credential
  tools          List the available tools
  version        Show version
  help           Show this help

Run 'pipedrive-mcp <command> --help' for more information on a command.
`)
}

func printAuthUsage() {
	fmt.Print(`pipedrive-mcp auth - Manage Pipedrive OAuth authentication

Usage:
  pipedrive-mcp auth <subcommand> [options]

Subcommands:
  login
      Print the authorization URL to open in a browser

  exchange <code> <state>
      Complete the flow with the code and state from the callback URL

  status [--json]
      Show the current authorization state

  logout
      Discard the stored credential

Configuration:
  OAuth client settings come from the config files or from the
  PIPEDRIVE_CLIENT_ID / PIPEDRIVE_CLIENT_SECRET / PIPEDRIVE_REDIRECT_URI
  environment variables.

Examples:
  pipedrive-mcp auth login
  pipedrive-mcp auth exchange 4f7c... 1b2d...
  pipedrive-mcp auth status --json
`)
}
