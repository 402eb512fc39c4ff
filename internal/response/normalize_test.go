package response

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
	"github.com/crmbridge/pipedrive-mcp/internal/transport"
)

func rawResponse(status int, body string, header http.Header) *transport.RawResponse {
	if header == nil {
		header = http.Header{}
	}
	return &transport.RawResponse{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var offsetDesc = &catalog.Descriptor{Tool: "deals_get_all", Method: "GET", Path: "/v1/deals", Pagination: catalog.PageOffset}
var cursorDesc = &catalog.Descriptor{Tool: "deals_get_collection", Method: "GET", Path: "/v1/deals/collection", Pagination: catalog.PageCursor}
var plainDesc = &catalog.Descriptor{Tool: "deals_get_details", Method: "GET", Path: "/v1/deals/{id}"}

func TestNormalize_SuccessPassesBodyThrough(t *testing.T) {
	res := Normalize(rawResponse(200, `{"success":true,"data":{"id":1}}`, nil), plainDesc)
	require.True(t, res.OK())
	assert.Equal(t, 200, res.StatusCode)
	assert.JSONEq(t, `{"success":true,"data":{"id":1}}`, string(res.Body))
	assert.Nil(t, res.NextCursor)
}

func TestNormalize_OffsetPaginationMoreItems(t *testing.T) {
	body := `{"success":true,"data":[{"id":1}],"additional_data":{"pagination":{"start":0,"limit":100,"more_items_in_collection":true,"next_start":100}}}`
	res := Normalize(rawResponse(200, body, nil), offsetDesc)
	require.True(t, res.OK())
	require.NotNil(t, res.NextCursor)
	assert.EqualValues(t, "100", *res.NextCursor)
}

func TestNormalize_OffsetPaginationWithoutNextStart(t *testing.T) {
	body := `{"success":true,"data":[],"additional_data":{"pagination":{"start":200,"limit":50,"more_items_in_collection":true}}}`
	res := Normalize(rawResponse(200, body, nil), offsetDesc)
	require.True(t, res.OK())
	require.NotNil(t, res.NextCursor)
	assert.EqualValues(t, "250", *res.NextCursor, "falls back to start+limit")
}

func TestNormalize_OffsetPaginationLastPage(t *testing.T) {
	body := `{"success":true,"data":[],"additional_data":{"pagination":{"start":100,"limit":100,"more_items_in_collection":false}}}`
	res := Normalize(rawResponse(200, body, nil), offsetDesc)
	require.True(t, res.OK())
	assert.Nil(t, res.NextCursor)
}

func TestNormalize_CursorPagination(t *testing.T) {
	body := `{"success":true,"data":[],"additional_data":{"next_cursor":"eyJkZWFscyI6Mn0"}}`
	res := Normalize(rawResponse(200, body, nil), cursorDesc)
	require.True(t, res.OK())
	require.NotNil(t, res.NextCursor)
	assert.EqualValues(t, "eyJkZWFscyI6Mn0", *res.NextCursor)
}

func TestNormalize_CursorPaginationExhausted(t *testing.T) {
	body := `{"success":true,"data":[],"additional_data":{"next_cursor":null}}`
	res := Normalize(rawResponse(200, body, nil), cursorDesc)
	require.True(t, res.OK())
	assert.Nil(t, res.NextCursor)
}

func TestNormalize_PaginationIgnoredForUnpaginatedEndpoint(t *testing.T) {
	body := `{"success":true,"data":{},"additional_data":{"pagination":{"start":0,"limit":100,"more_items_in_collection":true,"next_start":100}}}`
	res := Normalize(rawResponse(200, body, nil), plainDesc)
	require.True(t, res.OK())
	assert.Nil(t, res.NextCursor, "catalog says this endpoint does not paginate")
}

func TestNormalize_EmptySuccessBody(t *testing.T) {
	res := Normalize(rawResponse(204, "", nil), plainDesc)
	require.True(t, res.OK())
	assert.Empty(t, res.Body)
}

func TestNormalize_MalformedSuccessBody(t *testing.T) {
	res := Normalize(rawResponse(200, `<html>gateway</html>`, nil), plainDesc)
	require.False(t, res.OK())
	assert.Equal(t, result.KindProtocolError, res.Err.Kind)
	assert.False(t, res.Err.Retryable())
}

func TestNormalize_Unauthorized(t *testing.T) {
	res := Normalize(rawResponse(401, `{"success":false,"error":"Invalid token"}`, nil), plainDesc)
	require.False(t, res.OK())
	assert.Equal(t, result.KindAuthExpired, res.Err.Kind)
	assert.True(t, res.Err.Retryable())
	assert.Equal(t, 401, res.Err.HTTPStatus)
	assert.Contains(t, res.Err.Message, "Invalid token")
}

func TestNormalize_NotFound(t *testing.T) {
	res := Normalize(rawResponse(404, `{"success":false,"error":"Deal not found"}`, nil), plainDesc)
	require.False(t, res.OK())
	assert.Equal(t, result.KindNotFound, res.Err.Kind)
	assert.False(t, res.Err.Retryable())
	assert.Contains(t, res.Err.Message, "Deal not found")
}

func TestNormalize_RateLimitedCarriesRetryAfter(t *testing.T) {
	h := http.Header{"Retry-After": []string{"7"}}
	res := Normalize(rawResponse(429, `{"success":false,"error":"Rate limit exceeded"}`, h), plainDesc)
	require.False(t, res.OK())
	assert.Equal(t, result.KindRateLimited, res.Err.Kind)
	assert.True(t, res.Err.Retryable())
	assert.Equal(t, 7, res.Err.RetryAfter)
}

func TestNormalize_OtherClientError(t *testing.T) {
	res := Normalize(rawResponse(400, `{"success":false,"error":"Bad request"}`, nil), plainDesc)
	require.False(t, res.OK())
	assert.Equal(t, result.KindInvalidRequest, res.Err.Kind)
	assert.False(t, res.Err.Retryable())
}

func TestNormalize_ServerError(t *testing.T) {
	res := Normalize(rawResponse(502, "Bad Gateway", nil), plainDesc)
	require.False(t, res.OK())
	assert.Equal(t, result.KindUpstreamError, res.Err.Kind)
	assert.True(t, res.Err.Retryable())
	assert.Contains(t, res.Err.Message, "Bad Gateway")
}

func TestNormalize_BinaryDownloadStreams(t *testing.T) {
	desc := &catalog.Descriptor{Tool: "files_download", Method: "GET", Path: "/v1/files/{id}/download", BinaryResponse: true}
	res := Normalize(rawResponse(200, "binary-bytes", nil), desc)
	require.True(t, res.OK())
	require.NotNil(t, res.Stream)
	defer res.Stream.Close()

	data, err := io.ReadAll(res.Stream)
	require.NoError(t, err)
	assert.Equal(t, "binary-bytes", string(data))
	assert.Empty(t, res.Body)
}

func TestNormalize_BinaryDownloadErrorStatusStillClassified(t *testing.T) {
	desc := &catalog.Descriptor{Tool: "files_download", Method: "GET", Path: "/v1/files/{id}/download", BinaryResponse: true}
	res := Normalize(rawResponse(404, `{"success":false,"error":"File not found"}`, nil), desc)
	require.False(t, res.OK())
	assert.Equal(t, result.KindNotFound, res.Err.Kind)
}
