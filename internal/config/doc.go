// Package config handles configuration loading and resolution for fieldkit.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--format, --theme, --mode, --registry, etc.)
//  2. Environment variables (FIELDKIT_FORMAT, FIELDKIT_THEME, NO_COLOR, ...)
//  3. YAML config file (.fieldkit.yaml in local directory or ~/.config/fieldkit/.fieldkit.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
// ResolvedConfig.Sources records where each value came from.
//
// # Key Configuration Options
//
//   - format: output renderer (terminal, llm, json)
//   - theme: terminal theme (default, slate, mono)
//   - mode: render mode (display, compact, edit, form, preview)
//   - context: hosting surface passed through to renderers
//   - registry: field-type registry source, an http(s) URL or a file path
//   - fetch_timeout: bound on one registry fetch, e.g. "10s"
//   - max_depth: container nesting cap
//
// # Environment Variables
//
// The following environment variables are recognized:
//
//   - FIELDKIT_FORMAT, FIELDKIT_THEME, FIELDKIT_WIDTH, FIELDKIT_MODE, FIELDKIT_CONTEXT
//   - FIELDKIT_REGISTRY, FIELDKIT_FETCH_TIMEOUT, FIELDKIT_MAX_DEPTH
//   - FIELDKIT_NO_COLOR or NO_COLOR: Set to "true" or "1" to force the mono theme
//   - FIELDKIT_DEBUG: Set to "true" or "1" to enable debug logging
package config
