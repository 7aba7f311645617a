package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_palindrome/pkg/palindrome"
	"github.com/baditaflorin/l"
)

// newTestLogger builds a logger with discarded output so handler logging
// stays out of the test stream.
func newTestLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:     io.Discard,
		JsonFormat: true,
		AsyncWrite: false,
		BufferSize: 1024,
	})
}

// TestMain wires the handler globals the same way main does, with log output
// discarded.
func TestMain(m *testing.M) {
	var err error
	logger, err = newTestLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating test logger: %v\n", err)
		os.Exit(1)
	}

	checker, err = palindrome.New(
		palindrome.WithLogger(logger),
		palindrome.WithFastNormalizer(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating checker: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	logger.Close()
	os.Exit(code)
}

// serve runs a single request through the full router.
func serve(method, path, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	requestHandler(ctx)
	return ctx
}

func decodeResponse(t *testing.T, ctx *fasthttp.RequestCtx) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	return resp
}

func TestHandlePalindrome(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		palindrome bool
		compared   string
	}{
		{"phrase with case and spaces", `{"text":"A man a plan a canal Panama"}`, true, "amanaplanacanalpanama"},
		{"non-palindrome", `{"text":"race a car"}`, false, "raceacar"},
		// The empty sequence is symmetric; an empty or missing text field is
		// a valid request, not an error.
		{"empty text", `{"text":""}`, true, ""},
		{"missing text field", `{}`, true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := serve(fasthttp.MethodPost, "/palindrome", tc.body)
			assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

			resp := decodeResponse(t, ctx)
			assert.Equal(t, tc.palindrome, resp.Palindrome)
			assert.Equal(t, tc.compared, resp.Compared)
		})
	}
}

func TestHandleExact(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		palindrome bool
	}{
		{"lowercase palindrome", `{"text":"racecar"}`, true},
		{"mixed case fails", `{"text":"Racecar"}`, false},
		{"empty text", `{"text":""}`, true},
		{"missing text field", `{}`, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := serve(fasthttp.MethodPost, "/exact", tc.body)
			assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

			resp := decodeResponse(t, ctx)
			assert.Equal(t, tc.palindrome, resp.Palindrome)
			// The exact check compares the raw input.
			assert.Equal(t, resp.Input, resp.Compared)
		})
	}
}

func TestHandleCount(t *testing.T) {
	ctx := serve(fasthttp.MethodPost, "/count", `{"text":"A man a plan a canal Panama"}`)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp ToolResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Content, 2)
	assert.Equal(t, "Character count: 27", resp.Content[0].Text)
	assert.Equal(t, "Word count: 7", resp.Content[1].Text)
}

func TestHandleHealthCheck(t *testing.T) {
	ctx := serve(fasthttp.MethodGet, "/health", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"status":"ok"`)
}

func TestMethodNotAllowed(t *testing.T) {
	for _, path := range []string{"/palindrome", "/exact", "/count"} {
		t.Run(path, func(t *testing.T) {
			ctx := serve(fasthttp.MethodGet, path, "")
			assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())

			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
			assert.Equal(t, "Method not allowed", errResp.Error)
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	for _, path := range []string{"/palindrome", "/exact", "/count"} {
		t.Run(path, func(t *testing.T) {
			ctx := serve(fasthttp.MethodPost, path, `{"text":`)
			assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
			assert.Contains(t, errResp.Error, "Invalid request")
		})
	}
}

func TestUnknownPath(t *testing.T) {
	ctx := serve(fasthttp.MethodGet, "/similar", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Equal(t, "Not found", errResp.Error)
}
