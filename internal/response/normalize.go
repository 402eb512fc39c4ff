// Package response maps an upstream HTTP response onto the uniform tool
// result shape, including the pagination continuation token regardless of
// which convention the endpoint follows.
package response

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
	"github.com/crmbridge/pipedrive-mcp/internal/transport"
)

// envelope is the slice of the Pipedrive response body the normalizer
// cares about. The rest of the payload passes through untouched.
type envelope struct {
	Error          string `json:"error"`
	AdditionalData *struct {
		NextCursor string `json:"next_cursor"`
		Pagination *struct {
			Start     int  `json:"start"`
			Limit     int  `json:"limit"`
			MoreItems bool `json:"more_items_in_collection"`
			NextStart *int `json:"next_start"`
		} `json:"pagination"`
	} `json:"additional_data"`
}

// Normalize classifies the raw response. Binary download successes keep
// their body as a stream; everything else is decoded. A success status with
// an undecodable body is a protocol error: the upstream violated its own
// contract.
func Normalize(raw *transport.RawResponse, desc *catalog.Descriptor) *result.Result {
	success := raw.StatusCode >= 200 && raw.StatusCode < 300

	if success && desc.BinaryResponse {
		return result.SuccessStream(raw.StatusCode, raw.Body)
	}

	defer raw.Body.Close()
	body, err := io.ReadAll(raw.Body)
	if err != nil {
		return result.Failure(result.WrapErr(result.KindNetworkError, err, "failed to read response body"))
	}

	if !success {
		return result.Failure(failureError(raw, body))
	}

	if len(body) == 0 {
		return result.Success(raw.StatusCode, nil, nil)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return result.Failure(result.HTTPErrorf(result.KindProtocolError, raw.StatusCode,
			"upstream returned a success status with an undecodable body: %v", err))
	}

	return result.Success(raw.StatusCode, json.RawMessage(body), nextCursor(desc, &env))
}

// nextCursor extracts the continuation token using the convention the
// descriptor records. A list whose last page has been served yields nil.
func nextCursor(desc *catalog.Descriptor, env *envelope) *result.Cursor {
	if env.AdditionalData == nil {
		return nil
	}

	switch desc.Pagination {
	case catalog.PageOffset:
		p := env.AdditionalData.Pagination
		if p == nil || !p.MoreItems {
			return nil
		}
		next := p.Start + p.Limit
		if p.NextStart != nil {
			next = *p.NextStart
		}
		c := result.Cursor(strconv.Itoa(next))
		return &c
	case catalog.PageCursor:
		if env.AdditionalData.NextCursor == "" {
			return nil
		}
		c := result.Cursor(env.AdditionalData.NextCursor)
		return &c
	default:
		return nil
	}
}

func failureError(raw *transport.RawResponse, body []byte) *result.Error {
	msg := upstreamMessage(body)

	switch {
	case raw.StatusCode == http.StatusUnauthorized:
		return result.HTTPErrorf(result.KindAuthExpired, raw.StatusCode, "access token rejected: %s", msg)
	case raw.StatusCode == http.StatusNotFound:
		return result.HTTPErrorf(result.KindNotFound, raw.StatusCode, "%s", msg)
	case raw.StatusCode == http.StatusTooManyRequests:
		e := result.HTTPErrorf(result.KindRateLimited, raw.StatusCode, "rate limited: %s", msg)
		e.RetryAfter = retryAfterSeconds(raw.Header)
		return e
	case raw.StatusCode >= 400 && raw.StatusCode < 500:
		return result.HTTPErrorf(result.KindInvalidRequest, raw.StatusCode, "%s", msg)
	default:
		return result.HTTPErrorf(result.KindUpstreamError, raw.StatusCode, "%s", msg)
	}
}

// upstreamMessage pulls the human-readable error out of a Pipedrive error
// body, falling back to the raw text for non-JSON bodies.
func upstreamMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return env.Error
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "upstream returned no error detail"
	}
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

func retryAfterSeconds(h http.Header) int {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}
