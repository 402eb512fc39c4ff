// Package dispatch is the single entry point of the tool-to-HTTP engine.
// It composes catalog lookup, token acquisition, request building, the
// HTTP call and response normalization into one invocation.
package dispatch

import (
	"context"
	"net/http"

	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
	"github.com/crmbridge/pipedrive-mcp/internal/logging"
	"github.com/crmbridge/pipedrive-mcp/internal/request"
	"github.com/crmbridge/pipedrive-mcp/internal/response"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
	"github.com/crmbridge/pipedrive-mcp/internal/transport"
)

// TokenSource supplies bearer tokens for auth-required tools. Implemented
// by auth.Manager.
type TokenSource interface {
	Token(ctx context.Context) (string, *result.Error)
	Invalidate()
}

// Doer executes a prepared request. Implemented by transport.Executor.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*transport.RawResponse, *result.Error)
}

// Dispatcher routes tool invocations to the upstream API.
type Dispatcher struct {
	catalog *catalog.Catalog
	tokens  TokenSource
	builder *request.Builder
	exec    Doer
	logger  logging.Logger
}

// New creates a Dispatcher.
func New(cat *catalog.Catalog, tokens TokenSource, builder *request.Builder, exec Doer, logger logging.Logger) *Dispatcher {
	return &Dispatcher{
		catalog: cat,
		tokens:  tokens,
		builder: builder,
		exec:    exec,
		logger:  logger,
	}
}

// Catalog returns the endpoint catalog the dispatcher serves.
func (d *Dispatcher) Catalog() *catalog.Catalog { return d.catalog }

// Invoke resolves the tool, builds and executes the request, and
// normalizes the outcome. A 401 from the upstream invalidates the cached
// token and transparently retries the original call once; every other
// failure surfaces directly. Invocations are independent; concurrent calls
// share nothing but the credential.
func (d *Dispatcher) Invoke(ctx context.Context, tool string, args map[string]any) *result.Result {
	desc, lookupErr := d.catalog.Lookup(tool)
	if lookupErr != nil {
		return result.Failure(lookupErr)
	}

	log := d.logger.With("tool", tool)

	const maxAttempts = 2 // the original call plus one refresh-and-retry
	for attempt := 1; ; attempt++ {
		var token string
		if desc.AuthRequired {
			// No network call is made when the credential manager cannot
			// produce a token (unauthenticated or revoked).
			var terr *result.Error
			token, terr = d.tokens.Token(ctx)
			if terr != nil {
				return result.Failure(terr)
			}
		}

		req, berr := d.builder.Build(ctx, desc, args, token)
		if berr != nil {
			return result.Failure(berr)
		}

		raw, xerr := d.exec.Do(ctx, req)
		if xerr != nil {
			return result.Failure(xerr)
		}

		res := response.Normalize(raw, desc)
		if !res.OK() && res.Err.Kind == result.KindAuthExpired && desc.AuthRequired && attempt < maxAttempts {
			// The upstream rejected a token we thought was valid. Force a
			// refresh and retry the original call once; if the upstream
			// keeps rejecting, the failure surfaces.
			log.Debug("access token rejected upstream, refreshing and retrying")
			d.tokens.Invalidate()
			continue
		}

		if res.OK() {
			log.Debug("invocation succeeded", "status", res.StatusCode)
		} else {
			log.Debug("invocation failed", "kind", res.Err.Kind, "status", res.Err.HTTPStatus)
		}
		return res
	}
}
