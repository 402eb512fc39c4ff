// Package request turns an endpoint descriptor plus caller arguments into a
// fully-formed HTTP request: interpolated path, query string, JSON or
// multipart body, and headers.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosida95/uritemplate/v3"

	"github.com/crmbridge/pipedrive-mcp/internal/catalog"
	"github.com/crmbridge/pipedrive-mcp/internal/result"
)

// Builder constructs requests against a fixed API base URL.
type Builder struct {
	base string
}

// NewBuilder creates a Builder for the given base URL, e.g.
// https://api.pipedrive.com.
func NewBuilder(baseURL string) (*Builder, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}
	return &Builder{base: strings.TrimSuffix(u.String(), "/")}, nil
}

// Build produces the request for one invocation. Arguments are routed by
// the parameter locations the descriptor declares; keys not declared by the
// descriptor are ignored for forward compatibility with catalog updates.
// A required parameter missing from args fails with a missing_parameter
// error; required fields are never silently defaulted.
func (b *Builder) Build(ctx context.Context, desc *catalog.Descriptor, args map[string]any, token string) (*http.Request, *result.Error) {
	pathVars := uritemplate.Values{}
	query := url.Values{}
	headers := map[string]string{}
	bodyArgs := map[string]any{}
	var fileArg any

	for _, p := range desc.Params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if p.Required {
				return nil, result.Errorf(result.KindMissingParameter, "missing required parameter %q", p.Name)
			}
			continue
		}

		switch p.In {
		case catalog.InPath:
			pathVars[p.Name] = uritemplate.String(stringify(v))
		case catalog.InQuery:
			query.Set(p.Name, stringify(v))
		case catalog.InHeader:
			headers[p.Name] = stringify(v)
		case catalog.InBody:
			if desc.Body == catalog.BodyMultipart && p.Type == "file" {
				fileArg = v
			} else {
				bodyArgs[p.Name] = v
			}
		}
	}

	path, err := desc.Template().Expand(pathVars)
	if err != nil {
		// Required path params are validated above and template/param
		// coherence at catalog load, so this indicates a builder bug.
		return nil, result.WrapErr(result.KindProtocolError, err, "internal: path template %q failed to expand", desc.Path)
	}

	target := b.base + path
	if enc := query.Encode(); enc != "" {
		target += "?" + enc
	}

	req, rerr := b.newRequest(ctx, desc, target, bodyArgs, fileArg)
	if rerr != nil {
		return nil, rerr
	}

	if !desc.BinaryResponse {
		req.Header.Set("Accept", "application/json")
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	if desc.AuthRequired {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (b *Builder) newRequest(ctx context.Context, desc *catalog.Descriptor, target string, bodyArgs map[string]any, fileArg any) (*http.Request, *result.Error) {
	switch desc.Body {
	case catalog.BodyObject:
		if len(bodyArgs) == 0 {
			return plainRequest(ctx, desc.Method, target)
		}
		payload, err := json.Marshal(bodyArgs)
		if err != nil {
			return nil, result.WrapErr(result.KindInvalidRequest, err, "request body is not serializable")
		}
		req, err := http.NewRequestWithContext(ctx, desc.Method, target, bytes.NewReader(payload))
		if err != nil {
			return nil, result.WrapErr(result.KindInvalidRequest, err, "failed to build request")
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil

	case catalog.BodyMultipart:
		if fileArg == nil {
			return nil, result.Errorf(result.KindMissingParameter, "missing required file argument")
		}
		return multipartRequest(ctx, desc.Method, target, bodyArgs, fileArg)

	case catalog.BodyRaw:
		var raw io.Reader
		for _, v := range bodyArgs {
			r, rerr := argReader(v)
			if rerr != nil {
				return nil, rerr
			}
			raw = r
		}
		if raw == nil {
			raw = bytes.NewReader(nil)
		}
		req, err := http.NewRequestWithContext(ctx, desc.Method, target, raw)
		if err != nil {
			return nil, result.WrapErr(result.KindInvalidRequest, err, "failed to build request")
		}
		req.Header.Set("Content-Type", "application/octet-stream")
		return req, nil

	default:
		return plainRequest(ctx, desc.Method, target)
	}
}

func plainRequest(ctx context.Context, method, target string) (*http.Request, *result.Error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, result.WrapErr(result.KindInvalidRequest, err, "failed to build request")
	}
	return req, nil
}

// multipartRequest streams the file part through a pipe so uploads are
// never buffered fully in memory. Remaining body arguments become ordinary
// form fields.
func multipartRequest(ctx context.Context, method, target string, fields map[string]any, fileArg any) (*http.Request, *result.Error) {
	file, rerr := argReader(fileArg)
	if rerr != nil {
		return nil, rerr
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		var err error
		defer func() {
			if c, ok := file.(io.Closer); ok {
				c.Close()
			}
			if err != nil {
				pw.CloseWithError(err)
				return
			}
			pw.CloseWithError(mw.Close())
		}()

		for name, value := range fields {
			if err = mw.WriteField(name, stringify(value)); err != nil {
				return
			}
		}

		var part io.Writer
		if part, err = mw.CreateFormFile("file", fileName(fileArg)); err != nil {
			return
		}
		_, err = io.Copy(part, file)
	}()

	req, err := http.NewRequestWithContext(ctx, method, target, pr)
	if err != nil {
		pr.Close()
		return nil, result.WrapErr(result.KindInvalidRequest, err, "failed to build request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req, nil
}

// argReader interprets a file-like argument: an io.Reader is streamed as
// is, []byte is sent verbatim, and a string is treated as a local file
// path.
func argReader(v any) (io.Reader, *result.Error) {
	switch arg := v.(type) {
	case io.Reader:
		return arg, nil
	case []byte:
		return bytes.NewReader(arg), nil
	case string:
		f, err := os.Open(arg)
		if err != nil {
			return nil, result.WrapErr(result.KindInvalidRequest, err, "cannot open file %q", arg)
		}
		return f, nil
	default:
		return nil, result.Errorf(result.KindInvalidRequest, "unsupported file argument type %T", v)
	}
}

func fileName(v any) string {
	if path, ok := v.(string); ok {
		return filepath.Base(path)
	}
	return "file"
}

// stringify renders an argument for path, query or header placement.
// List values serialize as comma-joined elements, matching the Pipedrive
// convention for bulk operations such as delete-by-ids.
func stringify(v any) string {
	switch arg := v.(type) {
	case string:
		return arg
	case bool:
		return strconv.FormatBool(arg)
	case int:
		return strconv.Itoa(arg)
	case int64:
		return strconv.FormatInt(arg, 10)
	case float64:
		return strconv.FormatFloat(arg, 'f', -1, 64)
	case json.Number:
		return arg.String()
	case []string:
		return strings.Join(arg, ",")
	case []any:
		parts := make([]string, len(arg))
		for i, e := range arg {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", arg)
	}
}
