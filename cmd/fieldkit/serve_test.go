package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fieldkit/internal/config"
)

func testApp(t *testing.T) *app {
	t.Helper()
	isolate(t)
	var flags config.CliFlags
	var stdout, stderr bytes.Buffer
	fs := newFlagSet("serve", &stderr, &flags)
	require.NoError(t, fs.Parse([]string{"--format", "json"}))
	a, code := newApp(context.Background(), fs, flags, &stdout, &stderr)
	require.Equal(t, -1, code, stderr.String())
	return a
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServe_Healthz(t *testing.T) {
	rec := do(t, testApp(t).router(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServe_Registry(t *testing.T) {
	h := testApp(t).router()

	rec := do(t, h, http.MethodGet, "/registry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Entries []struct {
			ID string `json:"id"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Entries)

	rec = do(t, h, http.MethodGet, "/registry/text", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category":"text"`)

	rec = do(t, h, http.MethodGet, "/registry/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestServe_Render(t *testing.T) {
	h := testApp(t).router()
	body := `{"title":"Task","schema":[{"name":"title","field_type_id":"text"}],"record":{"title":"Ship it"}}`

	rec := do(t, h, http.MethodPost, "/render", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Ship it")

	body = `{"schema":{"fields":[{"name":"title","field_type_id":"text","validation":{"required":true}}]},"mode":"form","format":"llm"}`
	rec = do(t, h, http.MethodPost, "/render", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "ERR title: title is required")
}

func TestServe_RenderErrors(t *testing.T) {
	h := testApp(t).router()
	tests := []struct {
		name string
		body string
		code int
		want string
	}{
		{"bad json", `{`, http.StatusBadRequest, "INVALID_BODY"},
		{"missing schema", `{}`, http.StatusBadRequest, "MISSING_SCHEMA"},
		{"bad schema", `{"schema":{"nothing":true}}`, http.StatusUnprocessableEntity, "INVALID_SCHEMA"},
		{"bad mode", `{"schema":[{"name":"a","field_type_id":"text"}],"mode":"wizard"}`, http.StatusBadRequest, "INVALID_MODE"},
		{"bad format", `{"schema":[{"name":"a","field_type_id":"text"}],"format":"xml"}`, http.StatusBadRequest, "INVALID_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/render", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}
