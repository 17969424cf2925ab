package field

import "math"

// Config accessors read the effective (merged) config map. Missing keys
// and wrong-shaped values yield the supplied default.

// ConfigString returns cfg[key] as a string.
func ConfigString(cfg map[string]any, key, def string) string {
	if s, ok := String(cfg[key]); ok && s != "" {
		return s
	}
	return def
}

// ConfigInt returns cfg[key] as an int, clamped to the int32 range.
// NaN yields def.
func ConfigInt(cfg map[string]any, key string, def int) int {
	f, ok := Float(cfg[key])
	if !ok || math.IsNaN(f) {
		return def
	}
	return int(min(max(f, math.MinInt32), math.MaxInt32))
}

// ConfigFloat returns cfg[key] as a float64.
func ConfigFloat(cfg map[string]any, key string, def float64) float64 {
	if f, ok := Float(cfg[key]); ok {
		return f
	}
	return def
}

// ConfigBool returns cfg[key] as a bool.
func ConfigBool(cfg map[string]any, key string, def bool) bool {
	if _, present := cfg[key]; !present {
		return def
	}
	if b, ok := Bool(cfg[key]); ok {
		return b
	}
	return def
}

// ConfigStrings returns cfg[key] as a string list.
func ConfigStrings(cfg map[string]any, key string) []string {
	return Strings(cfg[key])
}

// Option is one choice of a select-like field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// DisplayLabel returns the label, falling back to the value.
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// Options reads cfg["options"], accepting either a list of strings or a
// list of {value|id, label|name, color} records. Duplicate values keep the
// first occurrence.
func Options(cfg map[string]any) []Option {
	raw := List(cfg["options"])
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(raw))
	out := make([]Option, 0, len(raw))
	for _, e := range raw {
		var opt Option
		switch t := e.(type) {
		case map[string]any:
			opt.Value = FirstString(t, "value", "id", "name", "label")
			opt.Label = FirstString(t, "label", "name")
			opt.Color = FirstString(t, "color")
		case Option:
			opt = t
		default:
			s, ok := String(e)
			if !ok {
				continue
			}
			opt.Value = s
		}
		if opt.Value == "" || seen[opt.Value] {
			continue
		}
		seen[opt.Value] = true
		out = append(out, opt)
	}
	return out
}

// FindOption returns the option whose value matches v.
func FindOption(opts []Option, v string) (Option, bool) {
	for _, o := range opts {
		if o.Value == v {
			return o, true
		}
	}
	return Option{}, false
}

// FirstString returns the first non-empty scalar stored under one of keys.
func FirstString(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := String(rec[k]); ok && s != "" {
			return s
		}
	}
	return ""
}
