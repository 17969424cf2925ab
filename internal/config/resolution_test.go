package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fieldkit/pkg/field"
)

var envKeys = []string{
	"FIELDKIT_FORMAT", "FIELDKIT_THEME", "FIELDKIT_WIDTH", "FIELDKIT_MODE",
	"FIELDKIT_CONTEXT", "FIELDKIT_REGISTRY", "FIELDKIT_FETCH_TIMEOUT",
	"FIELDKIT_MAX_DEPTH", "FIELDKIT_DEBUG", "FIELDKIT_NO_COLOR", "NO_COLOR",
}

// clearEnv blanks every recognized variable; empty counts as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	r, err := resolve(CliFlags{}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultFormat, r.Format)
	assert.Equal(t, DefaultTheme, r.Theme)
	assert.Equal(t, DefaultWidth, r.Width)
	assert.Equal(t, field.ModeDisplay, r.Mode)
	assert.Equal(t, field.ContextForm, r.Context)
	assert.Equal(t, DefaultFetchTimeout, r.FetchTimeout)
	assert.Equal(t, DefaultMaxDepth, r.MaxDepth)
	assert.Empty(t, r.Registry)
	for name, src := range r.Sources {
		assert.Equal(t, SourceDefault, src, name)
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	file := &AppConfig{Format: "json", Theme: "slate", Width: 100, Mode: "compact"}

	tests := []struct {
		name       string
		flags      CliFlags
		env        map[string]string
		wantFormat string
		wantSource string
	}{
		{"file over default", CliFlags{}, nil, "json", SourceFile},
		{"env over file", CliFlags{}, map[string]string{"FIELDKIT_FORMAT": "llm"}, "llm", SourceEnv},
		{"cli over env", CliFlags{Format: "terminal"}, map[string]string{"FIELDKIT_FORMAT": "llm"}, "terminal", SourceCLI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			r, err := resolve(tt.flags, file)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, r.Format)
			assert.Equal(t, tt.wantSource, r.Sources["format"])
			assert.Equal(t, field.ModeCompact, r.Mode)
			assert.Equal(t, SourceFile, r.Sources["mode"])
		})
	}
}

func TestResolve_NoColorForcesMono(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")

	r, err := resolve(CliFlags{Theme: "slate"}, nil)
	require.NoError(t, err)
	assert.True(t, r.NoColor)
	assert.Equal(t, "mono", r.Theme)
	assert.Equal(t, SourceEnv, r.Sources["theme"])

	r, err = resolve(CliFlags{Theme: "slate", NoColorSet: true}, nil)
	require.NoError(t, err)
	assert.False(t, r.NoColor)
	assert.Equal(t, "slate", r.Theme)
}

func TestResolve_DebugAndDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIELDKIT_DEBUG", "true")
	t.Setenv("FIELDKIT_FETCH_TIMEOUT", "250ms")
	t.Setenv("FIELDKIT_MAX_DEPTH", "3")

	r, err := resolve(CliFlags{}, &AppConfig{FetchTimeout: time.Minute})
	require.NoError(t, err)
	assert.True(t, r.Debug)
	assert.Equal(t, 250*time.Millisecond, r.FetchTimeout)
	assert.Equal(t, 3, r.MaxDepth)
	assert.Equal(t, SourceEnv, r.Sources["max_depth"])
}

func TestResolve_Validation(t *testing.T) {
	tests := []struct {
		name  string
		flags CliFlags
		env   map[string]string
		want  string
	}{
		{"bad format", CliFlags{Format: "xml"}, nil, `invalid format "xml"`},
		{"bad theme", CliFlags{Theme: "neon"}, nil, `invalid theme "neon"`},
		{"bad mode", CliFlags{Mode: "wizard"}, nil, `invalid mode "wizard"`},
		{"negative width", CliFlags{Width: -4}, nil, "width must be positive"},
		{"bad env int", CliFlags{}, map[string]string{"FIELDKIT_WIDTH": "wide"}, "FIELDKIT_WIDTH"},
		{"bad env duration", CliFlags{}, map[string]string{"FIELDKIT_FETCH_TIMEOUT": "soon"}, "FIELDKIT_FETCH_TIMEOUT"},
		{"negative timeout", CliFlags{FetchTimeout: -time.Second}, nil, "fetch_timeout must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := resolve(tt.flags, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResolveConfig_ExplicitFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: llm\nregistry: ./types.yaml\n"), 0o600))

	r, err := ResolveConfig(CliFlags{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, path, r.File)
	assert.Equal(t, "llm", r.Format)
	assert.Equal(t, "./types.yaml", r.Registry)
	assert.Equal(t, SourceFile, r.Sources["registry"])

	_, err = ResolveConfig(CliFlags{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
