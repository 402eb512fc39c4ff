package server

import (
	"encoding/json"

	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
)

// Auth tool schemas are crafted by hand; endpoint tool schemas are
// synthesized from the catalog. Keeping everything as raw JSON avoids the
// Go SDK's auto-generated schemas, whose "type": ["null", "object"]
// patterns strict MCP clients reject.

var authorizeOutputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"authorization_url": {"type": "string", "description": "URL the user must open to grant access"},
		"state": {"type": "string", "description": "Opaque value echoed back in the callback"}
	},
	"required": ["authorization_url", "state"],
	"additionalProperties": false
}`)

var exchangeCodeInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"code": {
			"type": "string",
			"description": "Authorization code from the OAuth callback"
		},
		"state": {
			"type": "string",
			"description": "State value from the OAuth callback"
		}
	},
	"required": ["code", "state"],
	"additionalProperties": false
}`)

var authStatusOutputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"state": {"type": "string", "description": "Credential lifecycle state"},
		"expires_at": {"type": "string", "description": "Access token expiry, RFC 3339"},
		"scope": {"type": "string", "description": "Granted OAuth scopes"}
	},
	"required": ["state"],
	"additionalProperties": false
}`)

var emptyInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {},
	"additionalProperties": false
}`)

var statusOutputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"status": {"type": "string"}
	},
	"required": ["status"],
	"additionalProperties": false
}`)

// endpointInputSchema synthesizes the input schema for a catalog endpoint
// from its declared parameters.
func endpointInputSchema(desc *catalog.Descriptor) json.RawMessage {
	props := make(map[string]any, len(desc.Params))
	var required []string

	for _, p := range desc.Params {
		props[p.Name] = paramSchema(p)
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	data, err := json.Marshal(schema)
	if err != nil {
		// The schema is built from plain maps and strings; this cannot fail.
		panic(err)
	}
	return data
}

func paramSchema(p catalog.Param) map[string]any {
	switch p.Type {
	case "integer":
		return map[string]any{"type": "integer"}
	case "number":
		return map[string]any{"type": "number"}
	case "boolean":
		return map[string]any{"type": "boolean"}
	case "array":
		// Items stay unconstrained: the request builder comma-joins
		// whatever scalars it is given.
		return map[string]any{
			"type":  "array",
			"items": map[string]any{},
		}
	case "object":
		return map[string]any{"type": "object", "additionalProperties": true}
	case "file":
		return map[string]any{
			"type":        "string",
			"description": "Path to the local file to upload",
		}
	default:
		return map[string]any{"type": "string"}
	}
}

// endpointOutputSchema is shared by every endpoint tool: the upstream body
// passes through untouched, plus the continuation cursor when the list has
// more pages.
var endpointOutputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"status_code": {"type": "integer"},
		"body": {"type": "object", "additionalProperties": true},
		"next_cursor": {"type": "string", "description": "Pass as the start or cursor parameter to fetch the next page"}
	},
	"additionalProperties": true
}`)
