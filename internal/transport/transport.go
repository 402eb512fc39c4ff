// Package transport performs the HTTP call for a prepared request, with a
// bounded timeout and a retry policy that only ever replays idempotent
// methods.
package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/crmbridge/pipedrive-mcp/internal/logging"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
)

// Defaults for the executor.
const (
	DefaultTimeout       = 30 * time.Second
	DefaultMaxRetries    = 2
	DefaultRetryInterval = 500 * time.Millisecond
)

// RawResponse is the upstream response handed to the normalizer. Body is a
// stream, not a buffer, so file downloads are not held in memory.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// Executor performs HTTP calls. Network-level failures (connection reset,
// DNS failure, timeout) on GET and HEAD are retried with exponential
// backoff up to MaxRetries; POST, PUT, PATCH and DELETE are attempted
// exactly once, since replaying them could duplicate a create or delete.
type Executor struct {
	Client        *http.Client
	MaxRetries    int
	RetryInterval time.Duration
	Logger        logging.Logger
}

// NewExecutor creates an Executor with a bounded per-request timeout.
func NewExecutor(timeout time.Duration, maxRetries int, logger logging.Logger) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Executor{
		Client:        &http.Client{Timeout: timeout},
		MaxRetries:    maxRetries,
		RetryInterval: DefaultRetryInterval,
		Logger:        logger,
	}
}

// Do executes the request. HTTP error statuses are not failures at this
// layer; they pass through for the normalizer to classify.
func (e *Executor) Do(ctx context.Context, req *http.Request) (*RawResponse, *result.Error) {
	req = req.WithContext(ctx)
	idempotent := req.Method == http.MethodGet || req.Method == http.MethodHead

	attempt := 0
	operation := func() (*http.Response, error) {
		if attempt > 0 {
			if err := rewindBody(req); err != nil {
				return nil, backoff.Permanent(err)
			}
		}
		attempt++

		resp, err := e.Client.Do(req)
		if err != nil {
			if !idempotent {
				return nil, backoff.Permanent(err)
			}
			e.Logger.Debug("retryable network failure", "method", req.Method, "url", req.URL.Redacted(), "attempt", attempt, "error", err)
			return nil, err
		}
		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = e.RetryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(e.MaxRetries)), ctx)

	resp, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, result.WrapErr(result.KindNetworkError, err, "request canceled or timed out")
		}
		return nil, result.WrapErr(result.KindNetworkError, err, "request failed after %d attempt(s)", attempt)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}

// rewindBody restores the request body before a retry attempt. Requests
// without a replayable body (streamed uploads) cannot be retried.
func rewindBody(req *http.Request) error {
	if req.Body == nil {
		return nil
	}
	if req.GetBody == nil {
		return errors.New("request body cannot be replayed")
	}
	body, err := req.GetBody()
	if err != nil {
		return err
	}
	req.Body = body
	return nil
}
