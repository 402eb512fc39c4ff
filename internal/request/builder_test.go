package request

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
)

func mustCatalog(t *testing.T, descs []catalog.Descriptor) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(descs)
	require.NoError(t, err)
	return c
}

func mustLookup(t *testing.T, c *catalog.Catalog, tool string) *catalog.Descriptor {
	t.Helper()
	d, lookupErr := c.Lookup(tool)
	require.Nil(t, lookupErr)
	return d
}

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder("https://api.pipedrive.example")
	require.NoError(t, err)
	return b
}

func TestBuild_PathInterpolation(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "deals_get_details", Method: "GET", Path: "/v1/deals/{id}", AuthRequired: true,
		Params: []catalog.Param{{Name: "id", In: catalog.InPath, Required: true, Type: "integer"}},
	}})
	b := newTestBuilder(t)

	req, rerr := b.Build(context.Background(), mustLookup(t, c, "deals_get_details"), map[string]any{"id": 42}, "tok")
	require.Nil(t, rerr)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/v1/deals/42", req.URL.Path)
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Nil(t, req.Body)
}

func TestBuild_PathValuePercentEncoded(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "leads_get_details", Method: "GET", Path: "/v1/leads/{id}",
		Params: []catalog.Param{{Name: "id", In: catalog.InPath, Required: true, Type: "string"}},
	}})
	b := newTestBuilder(t)

	req, rerr := b.Build(context.Background(), mustLookup(t, c, "leads_get_details"), map[string]any{"id": "a b/c"}, "")
	require.Nil(t, rerr)
	assert.Equal(t, "/v1/leads/a%20b%2Fc", req.URL.RawPath)
}

func TestBuild_QueryListCommaJoined(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "deals_delete_bulk", Method: "DELETE", Path: "/v1/deals",
		Params: []catalog.Param{{Name: "ids", In: catalog.InQuery, Required: true, Type: "array"}},
	}})
	b := newTestBuilder(t)

	// JSON-decoded arguments arrive as []any of float64.
	req, rerr := b.Build(context.Background(), mustLookup(t, c, "deals_delete_bulk"),
		map[string]any{"ids": []any{float64(1), float64(2), float64(3)}}, "")
	require.Nil(t, rerr)
	assert.Equal(t, "1,2,3", req.URL.Query().Get("ids"))
}

func TestBuild_QueryScalars(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "deals_get_all", Method: "GET", Path: "/v1/deals", Pagination: catalog.PageOffset,
		Params: []catalog.Param{
			{Name: "start", In: catalog.InQuery, Type: "integer"},
			{Name: "limit", In: catalog.InQuery, Type: "integer"},
			{Name: "owned_by_you", In: catalog.InQuery, Type: "integer"},
			{Name: "status", In: catalog.InQuery, Type: "string"},
		},
	}})
	b := newTestBuilder(t)

	req, rerr := b.Build(context.Background(), mustLookup(t, c, "deals_get_all"),
		map[string]any{"start": float64(100), "limit": 50, "status": "open"}, "")
	require.Nil(t, rerr)

	q := req.URL.Query()
	assert.Equal(t, "100", q.Get("start"))
	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "open", q.Get("status"))
	assert.False(t, q.Has("owned_by_you"), "absent optional params stay absent")
}

func TestBuild_MissingRequiredParameter(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "deals_get_details", Method: "GET", Path: "/v1/deals/{id}",
		Params: []catalog.Param{{Name: "id", In: catalog.InPath, Required: true, Type: "integer"}},
	}})
	b := newTestBuilder(t)

	_, rerr := b.Build(context.Background(), mustLookup(t, c, "deals_get_details"),
		map[string]any{"unrelated": "x"}, "")
	require.NotNil(t, rerr)
	assert.Equal(t, result.KindMissingParameter, rerr.Kind)
	assert.Contains(t, rerr.Message, `"id"`)
}

func TestBuild_NilArgumentCountsAsMissing(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "deals_get_details", Method: "GET", Path: "/v1/deals/{id}",
		Params: []catalog.Param{{Name: "id", In: catalog.InPath, Required: true, Type: "integer"}},
	}})
	b := newTestBuilder(t)

	_, rerr := b.Build(context.Background(), mustLookup(t, c, "deals_get_details"),
		map[string]any{"id": nil}, "")
	require.NotNil(t, rerr)
	assert.Equal(t, result.KindMissingParameter, rerr.Kind)
}

func TestBuild_UnknownKeysIgnored(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "deals_get_details", Method: "GET", Path: "/v1/deals/{id}",
		Params: []catalog.Param{{Name: "id", In: catalog.InPath, Required: true, Type: "integer"}},
	}})
	b := newTestBuilder(t)

	req, rerr := b.Build(context.Background(), mustLookup(t, c, "deals_get_details"),
		map[string]any{"id": 7, "future_field": true, "another": "ignored"}, "")
	require.Nil(t, rerr)
	assert.Equal(t, "/v1/deals/7", req.URL.Path)
	assert.Empty(t, req.URL.RawQuery)
}

func TestBuild_JSONBody(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "deals_add", Method: "POST", Path: "/v1/deals", Body: catalog.BodyObject, AuthRequired: true,
		Params: []catalog.Param{
			{Name: "title", In: catalog.InBody, Required: true, Type: "string"},
			{Name: "value", In: catalog.InBody, Type: "string"},
			{Name: "stage_id", In: catalog.InBody, Type: "integer"},
		},
	}})
	b := newTestBuilder(t)

	req, rerr := b.Build(context.Background(), mustLookup(t, c, "deals_add"),
		map[string]any{"title": "Big deal", "stage_id": 3, "not_declared": "dropped"}, "tok")
	require.Nil(t, rerr)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	data, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, map[string]any{"title": "Big deal", "stage_id": float64(3)}, payload)
}

func TestBuild_BodyOmittedWhenNoBodyArgs(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "deals_duplicate", Method: "POST", Path: "/v1/deals/{id}/duplicate", Body: catalog.BodyObject,
		Params: []catalog.Param{{Name: "id", In: catalog.InPath, Required: true, Type: "integer"}},
	}})
	b := newTestBuilder(t)

	req, rerr := b.Build(context.Background(), mustLookup(t, c, "deals_duplicate"),
		map[string]any{"id": 5}, "")
	require.Nil(t, rerr)
	assert.Nil(t, req.Body)
}

func TestBuild_HeaderParamVerbatim(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "custom_upload", Method: "POST", Path: "/v1/custom",
		Params: []catalog.Param{{Name: "X-Upload-Type", In: catalog.InHeader, Type: "string"}},
	}})
	b := newTestBuilder(t)

	req, rerr := b.Build(context.Background(), mustLookup(t, c, "custom_upload"),
		map[string]any{"X-Upload-Type": "resumable"}, "")
	require.Nil(t, rerr)
	assert.Equal(t, "resumable", req.Header.Get("X-Upload-Type"))
}

func TestBuild_NoAuthHeaderWhenNotRequired(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "public_ping", Method: "GET", Path: "/v1/ping",
	}})
	b := newTestBuilder(t)

	req, rerr := b.Build(context.Background(), mustLookup(t, c, "public_ping"), nil, "should-not-appear")
	require.Nil(t, rerr)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestBuild_MultipartStreamsFilePart(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "files_add", Method: "POST", Path: "/v1/files", Body: catalog.BodyMultipart, AuthRequired: true,
		Params: []catalog.Param{
			{Name: "file", In: catalog.InBody, Required: true, Type: "file"},
			{Name: "deal_id", In: catalog.InBody, Type: "integer"},
		},
	}})
	b := newTestBuilder(t)

	content := strings.NewReader("file-bytes")
	req, rerr := b.Build(context.Background(), mustLookup(t, c, "files_add"),
		map[string]any{"file": content, "deal_id": 12}, "tok")
	require.Nil(t, rerr)

	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	mr := multipart.NewReader(req.Body, params["boundary"])
	parts := map[string]string{}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		parts[part.FormName()] = string(data)
	}
	assert.Equal(t, "file-bytes", parts["file"])
	assert.Equal(t, "12", parts["deal_id"])
}

func TestBuild_MultipartMissingFile(t *testing.T) {
	c := mustCatalog(t, []catalog.Descriptor{{
		Tool: "files_add", Method: "POST", Path: "/v1/files", Body: catalog.BodyMultipart,
		Params: []catalog.Param{{Name: "file", In: catalog.InBody, Required: true, Type: "file"}},
	}})
	b := newTestBuilder(t)

	_, rerr := b.Build(context.Background(), mustLookup(t, c, "files_add"), map[string]any{}, "")
	require.NotNil(t, rerr)
	assert.Equal(t, result.KindMissingParameter, rerr.Kind)
}

func TestNewBuilder_RejectsRelativeURL(t *testing.T) {
	_, err := NewBuilder("api.pipedrive.com")
	assert.Error(t, err)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in       any
		expected string
	}{
		{"s", "s"},
		{true, "true"},
		{7, "7"},
		{int64(8), "8"},
		{float64(9), "9"},
		{float64(9.5), "9.5"},
		{json.Number("10"), "10"},
		{[]string{"a", "b"}, "a,b"},
		{[]any{float64(1), "x"}, "1,x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, stringify(tt.in))
	}
}
