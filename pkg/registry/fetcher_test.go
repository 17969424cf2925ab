package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fieldkit/pkg/field"
)

func TestDecodeJSON_Shapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"bare array", `[{"id":"text","category":"primitive"},{"id":"group","category":"container","is_container":true}]`, []string{"text", "group"}},
		{"entries envelope", `{"entries":[{"id":"number"}]}`, []string{"number"}},
		{"data envelope", `{"data":[{"id":"date"}]}`, []string{"date"}},
		{"field_types envelope", `{"field_types":[{"id":"url"}]}`, []string{"url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.in))
			require.NoError(t, err)
			ids := make([]string, len(got))
			for i, e := range got {
				ids[i] = e.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	_, err := DecodeJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestFileFetcher_YAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "registry.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
- id: currency
  category: primitive
  default_config:
    precision: 2
    currency: EUR
- id: repeater
  category: container
  is_container: true
`), 0o600))
	jsonPath := filepath.Join(dir, "registry.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"entries":[{"id":"rank","category":"primitive"}]}`), 0o600))

	got, err := FileFetcher{Path: yamlPath}.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "EUR", got[0].DefaultConfig["currency"])
	assert.True(t, got[1].IsContainer)
	assert.Equal(t, field.EntryContainer, got[1].Category)

	got, err = FileFetcher{Path: jsonPath}.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rank", got[0].ID)

	_, err = FileFetcher{Path: filepath.Join(dir, "missing.yaml")}.List(context.Background())
	assert.Error(t, err)
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/field-types" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"text","category":"primitive"}]`))
	}))
	defer srv.Close()

	got, err := HTTPFetcher{URL: srv.URL + "/field-types"}.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "text", got[0].ID)

	_, err = HTTPFetcher{URL: srv.URL + "/missing"}.List(context.Background())
	assert.ErrorContains(t, err, "unexpected status")
}

func TestHTTPFetcher_FailureFeedsEmptyCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(HTTPFetcher{URL: srv.URL}, WithLogger(quietLogger()))
	assert.Empty(t, c.All(context.Background()))
}

func TestBuiltinEntries_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range BuiltinEntries() {
		assert.False(t, seen[e.ID], "duplicate builtin %q", e.ID)
		seen[e.ID] = true
		if e.IsContainer {
			assert.Equal(t, field.EntryContainer, e.Category)
		}
	}
}
