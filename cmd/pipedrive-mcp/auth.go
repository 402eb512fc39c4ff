package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

func cmdAuthLogin(args []string) {
	a, err := buildApp()
	if err != nil {
		fatal("Error: %v", err)
	}
	if a.cfg.ClientID == "" {
		fatal("Error: no OAuth client configured; set PIPEDRIVE_CLIENT_ID or add an oauth block to the config")
	}

	authURL, state := a.auth.Begin()
	fmt.Println("Open this URL in a browser to authorize access:")
	fmt.Println()
	fmt.Printf("  %s\n", authURL)
	fmt.Println()
	fmt.Println("Then complete the flow with the code and state from the callback URL:")
	fmt.Printf("  pipedrive-mcp auth exchange <code> %s\n", state)
}

func cmdAuthExchange(args []string) {
	if len(args) < 1 {
		fatal("Usage: pipedrive-mcp auth exchange <code> [state]")
	}
	code := args[0]
	state := ""
	if len(args) > 1 {
		state = args[1]
	}

	a, err := buildApp()
	if err != nil {
		fatal("Error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if xerr := a.auth.Exchange(ctx, code, state); xerr != nil {
		fatal("Authorization failed: %v", xerr)
	}

	st := a.auth.Status()
	fmt.Println("Authorization complete.")
	if !st.ExpiresAt.IsZero() {
		fmt.Printf("Access token expires at %s\n", st.ExpiresAt.Format(time.RFC3339))
	}
}

func cmdAuthStatus(args []string) {
	asJSON := false
	for _, arg := range args {
		if arg == "--json" {
			asJSON = true
		}
	}

	a, err := buildApp()
	if err != nil {
		fatal("Error: %v", err)
	}

	st := a.auth.Status()
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(st)
		return
	}

	fmt.Printf("State: %s\n", st.State)
	if !st.ExpiresAt.IsZero() {
		fmt.Printf("Expires: %s\n", st.ExpiresAt.Format(time.RFC3339))
	}
	if st.Scope != "" {
		fmt.Printf("Scope: %s\n", st.Scope)
	}
}

func cmdAuthLogout(args []string) {
	a, err := buildApp()
	if err != nil {
		fatal("Error: %v", err)
	}

	if err := a.auth.Logout(); err != nil {
		fatal("Error clearing stored credential: %v", err)
	}
	fmt.Println("Logged out.")
}
