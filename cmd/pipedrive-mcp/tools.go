package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
)

func cmdTools(args []string) {
	asJSON := false
	filter := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--json":
			asJSON = true
		case "--help", "-h":
			printToolsUsage()
			return
		default:
			filter = args[i]
		}
	}

	cat, err := catalog.Load()
	if err != nil {
		fatal("Error loading endpoint catalog: %v", err)
	}

	type toolInfo struct {
		Name        string `json:"name"`
		Method      string `json:"method"`
		Path        string `json:"path"`
		Description string `json:"description,omitempty"`
	}

	var tools []toolInfo
	for _, desc := range cat.Tools() {
		if filter != "" && !strings.Contains(desc.Tool, filter) {
			continue
		}
		tools = append(tools, toolInfo{
			Name:        desc.Tool,
			Method:      desc.Method,
			Path:        desc.Path,
			Description: desc.Description,
		})
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(tools)
		return
	}

	for _, t := range tools {
		fmt.Printf("%-40s %-6s %s\n", t.Name, t.Method, t.Path)
	}
	fmt.Printf("\n%d tools\n", len(tools))
}

func printToolsUsage() {
	fmt.Print(`pipedrive-mcp tools - List the available tools

Usage:
  pipedrive-mcp tools [filter] [--json]

Arguments:
  filter    Only show tools whose name contains this substring

Options:
  --json    Output as JSON

Examples:
  pipedrive-mcp tools
  pipedrive-mcp tools deals
  pipedrive-mcp tools --json
`)
}
