// Package catalog holds the static table of Pipedrive endpoint descriptors
// and the read-only lookup the dispatcher resolves tool names against.
//
// The table is data: each descriptor binds a tool name to an HTTP method, a
// URI template, parameter locations, the request body shape and the
// pagination convention the endpoint follows. It is loaded once at startup,
// validated, and never mutated afterwards, so concurrent lookups need no
// locking.
package catalog

import (
	"fmt"

	"github.com/yosida95/uritemplate/v3"

	"github.com/crmbridge/pipedrive-mcp/internal/result"
)

// Location says where a parameter is placed in the outgoing request.
type Location string

const (
	InPath   Location = "path"
	InQuery  Location = "query"
	InHeader Location = "header"
	InBody   Location = "body"
)

// BodyShape says how body-located arguments are serialized.
type BodyShape string

const (
	BodyNone      BodyShape = ""          // no request body
	BodyObject    BodyShape = "object"    // JSON object of body params
	BodyMultipart BodyShape = "multipart" // multipart/form-data with a file part
	BodyRaw       BodyShape = "raw"       // raw bytes from a single body param
)

// PaginationStyle records which continuation convention a list endpoint uses.
type PaginationStyle string

const (
	PageNone   PaginationStyle = ""
	PageOffset PaginationStyle = "offset" // start + limit + more_items_in_collection
	PageCursor PaginationStyle = "cursor" // cursor + limit + next_cursor
)

// Param describes one endpoint parameter.
type Param struct {
	Name     string
	In       Location
	Required bool
	Type     string // JSON schema type: string, integer, number, boolean, array, object
}

// Descriptor is the immutable record binding a tool to an endpoint shape.
type Descriptor struct {
	Tool           string
	Method         string
	Path           string // URI template with {name} placeholders
	Params         []Param
	Body           BodyShape
	Pagination     PaginationStyle
	AuthRequired   bool
	BinaryResponse bool // response body is a byte stream, not JSON
	Description    string

	template *uritemplate.Template
}

// Template returns the compiled URI template for the descriptor path.
func (d *Descriptor) Template() *uritemplate.Template { return d.template }

// Param returns the named parameter, if declared.
func (d *Descriptor) Param(name string) (*Param, bool) {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i], true
		}
	}
	return nil, false
}

// Idempotent reports whether the descriptor's method is safe to retry at the
// network level.
func (d *Descriptor) Idempotent() bool {
	return d.Method == "GET" || d.Method == "HEAD"
}

// Catalog is the read-only tool name index.
type Catalog struct {
	byTool map[string]*Descriptor
	order  []string
}

// Load builds the catalog from the built-in descriptor table.
func Load() (*Catalog, error) {
	return New(descriptors)
}

// New builds a catalog from a descriptor slice, failing fast on duplicate
// tool names and on path templates inconsistent with their declared
// parameters. Configuration errors here are fatal, not per-call.
func New(descs []Descriptor) (*Catalog, error) {
	c := &Catalog{
		byTool: make(map[string]*Descriptor, len(descs)),
		order:  make([]string, 0, len(descs)),
	}

	for i := range descs {
		d := descs[i]
		if d.Tool == "" {
			return nil, fmt.Errorf("catalog: descriptor %d has no tool name", i)
		}
		if _, exists := c.byTool[d.Tool]; exists {
			return nil, fmt.Errorf("catalog: duplicate tool %q", d.Tool)
		}

		tmpl, err := uritemplate.New(d.Path)
		if err != nil {
			return nil, fmt.Errorf("catalog: tool %q has invalid path template %q: %w", d.Tool, d.Path, err)
		}
		d.template = tmpl

		if err := checkPathParams(&d); err != nil {
			return nil, err
		}

		c.byTool[d.Tool] = &d
		c.order = append(c.order, d.Tool)
	}

	return c, nil
}

// checkPathParams verifies that template placeholders and declared path
// parameters agree, and that every path parameter is required. A mismatch
// would surface as an unresolvable placeholder at request time, which is a
// catalog bug rather than a caller error.
func checkPathParams(d *Descriptor) error {
	declared := make(map[string]bool)
	for _, p := range d.Params {
		if p.In == InPath {
			if !p.Required {
				return fmt.Errorf("catalog: tool %q path param %q must be required", d.Tool, p.Name)
			}
			declared[p.Name] = true
		}
	}

	inTemplate := make(map[string]bool)
	for _, name := range d.template.Varnames() {
		inTemplate[name] = true
		if !declared[name] {
			return fmt.Errorf("catalog: tool %q template placeholder %q is not a declared path param", d.Tool, name)
		}
	}
	for name := range declared {
		if !inTemplate[name] {
			return fmt.Errorf("catalog: tool %q path param %q does not appear in template %q", d.Tool, name, d.Path)
		}
	}
	return nil
}

// Lookup resolves a tool name to its descriptor.
func (c *Catalog) Lookup(tool string) (*Descriptor, *result.Error) {
	d, ok := c.byTool[tool]
	if !ok {
		return nil, result.Errorf(result.KindUnknownTool, "unknown tool %q", tool)
	}
	return d, nil
}

// Tools returns all descriptors in table order.
func (c *Catalog) Tools() []*Descriptor {
	out := make([]*Descriptor, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byTool[name])
	}
	return out
}

// Len returns the number of registered tools.
func (c *Catalog) Len() int { return len(c.byTool) }
