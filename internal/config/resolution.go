package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/dkoosis/fieldkit/pkg/field"
)

// Value sources recorded in ResolvedConfig.Sources.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags. Zero values mean the
// flag was not given; booleans carry explicit Set markers.
type CliFlags struct {
	ConfigFile   string
	Format       string
	Theme        string
	Width        int
	Mode         string
	Context      string
	Registry     string
	FetchTimeout time.Duration
	MaxDepth     int
	Debug        bool
	NoColor      bool

	DebugSet   bool
	NoColorSet bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Format       string
	Theme        string
	Width        int
	Mode         field.Mode
	Context      field.Context
	Registry     string
	FetchTimeout time.Duration
	MaxDepth     int
	Debug        bool
	NoColor      bool

	// Config file that was read, if any.
	File string
	// Sources maps each setting name to where its value came from.
	Sources map[string]string
}

var (
	validFormats = map[string]bool{"terminal": true, "llm": true, "json": true}
	validThemes  = map[string]bool{"default": true, "slate": true, "mono": true}
)

// ResolveConfig resolves configuration from all sources with explicit priority order.
func ResolveConfig(flags CliFlags) (*ResolvedConfig, error) {
	var (
		fileCfg *AppConfig
		path    string
	)
	if flags.ConfigFile != "" {
		cfg, err := LoadConfigFile(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		fileCfg, path = cfg, flags.ConfigFile
	} else {
		fileCfg, path = LoadConfig()
	}
	resolved, err := resolve(flags, fileCfg)
	if err != nil {
		return nil, err
	}
	resolved.File = path
	return resolved, nil
}

func resolve(flags CliFlags, file *AppConfig) (*ResolvedConfig, error) {
	if file == nil {
		file = &AppConfig{}
	}
	r := &ResolvedConfig{Sources: make(map[string]string)}
	var errs *multierror.Error

	r.Format = resolveString(r, "format", flags.Format, "FIELDKIT_FORMAT", file.Format, DefaultFormat)
	r.Theme = resolveString(r, "theme", flags.Theme, "FIELDKIT_THEME", file.Theme, DefaultTheme)
	r.Registry = resolveString(r, "registry", flags.Registry, "FIELDKIT_REGISTRY", file.Registry, "")
	r.Context = field.Context(resolveString(r, "context", flags.Context, "FIELDKIT_CONTEXT", file.Context, DefaultContext))
	mode := resolveString(r, "mode", flags.Mode, "FIELDKIT_MODE", file.Mode, DefaultMode)

	var err error
	if r.Width, err = resolveInt(r, "width", flags.Width, "FIELDKIT_WIDTH", file.Width, DefaultWidth); err != nil {
		errs = multierror.Append(errs, err)
	}
	if r.MaxDepth, err = resolveInt(r, "max_depth", flags.MaxDepth, "FIELDKIT_MAX_DEPTH", file.MaxDepth, DefaultMaxDepth); err != nil {
		errs = multierror.Append(errs, err)
	}
	if r.FetchTimeout, err = resolveDuration(r, flags.FetchTimeout, file.FetchTimeout); err != nil {
		errs = multierror.Append(errs, err)
	}

	r.Debug = resolveBool(r, "debug", flags.Debug, flags.DebugSet, file.Debug, "FIELDKIT_DEBUG")
	r.NoColor = resolveBool(r, "no_color", flags.NoColor, flags.NoColorSet, file.NoColor, "FIELDKIT_NO_COLOR", "NO_COLOR")
	if r.NoColor {
		r.Theme = "mono"
		r.Sources["theme"] = r.Sources["no_color"]
	}

	m, ok := field.ParseMode(mode)
	if !ok {
		errs = multierror.Append(errs, fmt.Errorf("invalid mode %q (must be: display, compact, edit, form, preview)", mode))
	}
	r.Mode = m

	if !validFormats[r.Format] {
		errs = multierror.Append(errs, fmt.Errorf("invalid format %q (must be: terminal, llm, json)", r.Format))
	}
	if !validThemes[r.Theme] {
		errs = multierror.Append(errs, fmt.Errorf("invalid theme %q (must be: default, slate, mono)", r.Theme))
	}
	if r.Width <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("width must be positive, got: %d", r.Width))
	}
	if r.MaxDepth < 1 {
		errs = multierror.Append(errs, fmt.Errorf("max_depth must be at least 1, got: %d", r.MaxDepth))
	}
	if r.FetchTimeout < 0 {
		errs = multierror.Append(errs, fmt.Errorf("fetch_timeout must not be negative, got: %s", r.FetchTimeout))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

func resolveString(r *ResolvedConfig, name, cli, envKey, file, def string) string {
	switch {
	case cli != "":
		r.Sources[name] = SourceCLI
		return cli
	case os.Getenv(envKey) != "":
		r.Sources[name] = SourceEnv
		return os.Getenv(envKey)
	case file != "":
		r.Sources[name] = SourceFile
		return file
	}
	r.Sources[name] = SourceDefault
	return def
}

func resolveInt(r *ResolvedConfig, name string, cli int, envKey string, file, def int) (int, error) {
	if cli != 0 {
		r.Sources[name] = SourceCLI
		return cli, nil
	}
	if v := os.Getenv(envKey); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", envKey, err)
		}
		r.Sources[name] = SourceEnv
		return n, nil
	}
	if file != 0 {
		r.Sources[name] = SourceFile
		return file, nil
	}
	r.Sources[name] = SourceDefault
	return def, nil
}

func resolveDuration(r *ResolvedConfig, cli, file time.Duration) (time.Duration, error) {
	const name = "fetch_timeout"
	if cli != 0 {
		r.Sources[name] = SourceCLI
		return cli, nil
	}
	if v := os.Getenv("FIELDKIT_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("FIELDKIT_FETCH_TIMEOUT: %w", err)
		}
		r.Sources[name] = SourceEnv
		return d, nil
	}
	if file != 0 {
		r.Sources[name] = SourceFile
		return file, nil
	}
	r.Sources[name] = SourceDefault
	return DefaultFetchTimeout, nil
}

func resolveBool(r *ResolvedConfig, name string, cli, cliSet, file bool, envKeys ...string) bool {
	if cliSet {
		r.Sources[name] = SourceCLI
		return cli
	}
	if b := getEnvBool(envKeys...); b != nil {
		r.Sources[name] = SourceEnv
		return *b
	}
	if file {
		r.Sources[name] = SourceFile
		return true
	}
	r.Sources[name] = SourceDefault
	return false
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}
