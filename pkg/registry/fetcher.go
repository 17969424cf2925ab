package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/fieldkit/pkg/field"
)

// StaticFetcher serves a fixed list of entries.
type StaticFetcher []field.Entry

// List returns a copy of the entries.
func (s StaticFetcher) List(context.Context) ([]field.Entry, error) {
	out := make([]field.Entry, len(s))
	copy(out, s)
	return out, nil
}

// FileFetcher reads entries from a YAML or JSON file on every fetch.
type FileFetcher struct {
	Path string
}

// List reads and decodes the file. Files ending in .json are decoded as
// JSON; anything else as YAML.
func (f FileFetcher) List(context.Context) ([]field.Entry, error) {
	// #nosec G304 -- path comes from user configuration
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("registry: reading %s: %w", f.Path, err)
	}
	if strings.EqualFold(filepath.Ext(f.Path), ".json") {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}

// HTTPFetcher GETs the entry list from a metadata endpoint.
type HTTPFetcher struct {
	URL    string
	Client *http.Client // defaults to a client with a 30s timeout
}

// DefaultHTTPTimeout bounds requests made with the default client.
const DefaultHTTPTimeout = 30 * time.Second

// List fetches and decodes the endpoint's JSON body.
func (h HTTPFetcher) List(ctx context.Context) ([]field.Entry, error) {
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("registry: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry: fetching %s: %w", h.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry: fetching %s: unexpected status %s", h.URL, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("registry: reading response: %w", err)
	}
	return DecodeJSON(data)
}

// envelope accepts the wrapped shapes metadata services commonly return.
type envelope struct {
	Entries    []field.Entry `json:"entries" yaml:"entries"`
	Data       []field.Entry `json:"data" yaml:"data"`
	FieldTypes []field.Entry `json:"field_types" yaml:"field_types"`
}

func (e envelope) list() []field.Entry {
	switch {
	case e.Entries != nil:
		return e.Entries
	case e.Data != nil:
		return e.Data
	default:
		return e.FieldTypes
	}
}

// DecodeJSON decodes either a bare entry array or an object wrapping one
// under "entries", "data" or "field_types".
func DecodeJSON(data []byte) ([]field.Entry, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []field.Entry
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("registry: decoding entries: %w", err)
		}
		return list, nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("registry: decoding entries: %w", err)
	}
	return env.list(), nil
}

// DecodeYAML decodes the same shapes as DecodeJSON from YAML.
func DecodeYAML(data []byte) ([]field.Entry, error) {
	var list []field.Entry
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var env envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("registry: decoding entries: %w", err)
	}
	return env.list(), nil
}
