package field

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Values are untyped: scalars, arrays, or nested records. The helpers below
// coerce them for renderers. A value of the wrong shape coerces to the
// empty state; no helper panics.

// IsEmpty reports whether v should render as the empty state.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// String coerces a scalar to its display string. Records and arrays do not
// coerce and yield false.
func String(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), true
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}

// Float coerces numbers and numeric strings.
func Float(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	case interface{ Float64() (float64, error) }:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

// Bool coerces booleans, common truthy strings and numbers.
func Bool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y", "1", "on", "checked":
			return true, true
		case "false", "no", "n", "0", "off", "":
			return false, true
		}
		return false, false
	}
	if f, ok := Float(v); ok {
		return f != 0, true
	}
	return false, false
}

// Strings coerces a value to a list of scalar strings. A single scalar
// becomes a one-element list; non-scalar elements are skipped.
func Strings(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := String(e); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s, ok := String(v); ok && s != "" {
		return []string{s}
	}
	return nil
}

// Record coerces a nested record. The returned map is a copy.
func Record(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = e
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = e
		}
		return out
	}
	return nil
}

// List coerces an array of any element type.
func List(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return nil
}

// ErrorOf extracts the message from an error-shaped value such as
// {"error": "division by zero"} produced by derived-field evaluation.
func ErrorOf(v any) (string, bool) {
	rec, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	msg, ok := rec["error"]
	if !ok {
		return "", false
	}
	s, ok := String(msg)
	if !ok || s == "" {
		return "error", true
	}
	return s, true
}
