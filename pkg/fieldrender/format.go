package fieldrender

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkoosis/fieldkit/pkg/field"
)

const (
	emDash   = "—"
	ellipsis = "…"

	defaultCompactWidth = 40
	defaultPreviewWidth = 60

	// maxPreviewDepth bounds the nesting jsonPreview will marshal.
	maxPreviewDepth = 32
	// maxDurationSeconds is the largest magnitude time.Duration can hold.
	maxDurationSeconds = float64(math.MaxInt64 / int64(time.Second))
)

// truncate shortens s to width display cells. Uses go-runewidth so East
// Asian wide characters and emoji count correctly.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// singleLine collapses whitespace runs, including newlines, to one space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// jsonPreview renders an arbitrary value as compact JSON cut to width.
// Cyclic or overly deep values render as a placeholder instead.
func jsonPreview(v any, width int) string {
	if !boundedValue(reflect.ValueOf(v), 0, map[uintptr]bool{}) {
		return opaquePreview(v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return truncate(string(data), width)
}

func opaquePreview(v any) string {
	switch reflect.Indirect(reflect.ValueOf(v)).Kind() {
	case reflect.Slice, reflect.Array:
		return "[" + ellipsis + "]"
	default:
		return "{" + ellipsis + "}"
	}
}

// boundedValue reports whether v is acyclic and nested at most
// maxPreviewDepth levels. onPath holds the references of the current path,
// so shared but acyclic references are accepted.
func boundedValue(v reflect.Value, depth int, onPath map[uintptr]bool) bool {
	if depth > maxPreviewDepth {
		return false
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return boundedValue(v.Elem(), depth, onPath)
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return true
		}
		ptr := v.Pointer()
		if v.Kind() == reflect.Slice {
			// Distinct slices may share a backing array; only the same
			// header on the path is a cycle.
			ptr ^= uintptr(v.Len()) << 1
		}
		if onPath[ptr] {
			return false
		}
		onPath[ptr] = true
		defer delete(onPath, ptr)
		switch v.Kind() {
		case reflect.Pointer:
			return boundedValue(v.Elem(), depth+1, onPath)
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				if !boundedValue(iter.Value(), depth+1, onPath) {
					return false
				}
			}
			return true
		}
		for i := 0; i < v.Len(); i++ {
			if !boundedValue(v.Index(i), depth+1, onPath) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !boundedValue(v.Index(i), depth+1, onPath) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !boundedValue(v.Field(i), depth+1, onPath) {
				return false
			}
		}
		return true
	}
	return true
}

func localeTag(cfg map[string]any) language.Tag {
	tag, err := language.Parse(field.ConfigString(cfg, "locale", "en"))
	if err != nil {
		return language.English
	}
	return tag
}

// numberKind selects the presentation of a numeric value.
type numberKind int

const (
	numberPlain numberKind = iota
	numberCurrency
	numberPercent
	numberRating
	numberDuration
)

func numberKindOf(typeKey string, cfg map[string]any) numberKind {
	format := strings.ToLower(field.ConfigString(cfg, "format", ""))
	switch {
	case format == "currency" || field.TypeContains(typeKey, "currency", "amount"):
		return numberCurrency
	case format == "percent" || field.TypeContains(typeKey, "percent"):
		return numberPercent
	case format == "rating" || field.TypeContains(typeKey, "rating"):
		return numberRating
	case format == "duration" || field.TypeContains(typeKey, "duration"):
		return numberDuration
	default:
		return numberPlain
	}
}

// formatNumber renders v for display using locale-aware grouping.
func formatNumber(v float64, kind numberKind, cfg map[string]any) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return emDash
	}
	p := message.NewPrinter(localeTag(cfg))
	precision := field.ConfigInt(cfg, "precision", -1)

	switch kind {
	case numberCurrency:
		code := field.ConfigString(cfg, "currency", "USD")
		unit, err := currency.ParseISO(code)
		if precision < 0 {
			precision = 2
			if err == nil {
				if scale, _ := currency.Standard.Rounding(unit); scale >= 0 {
					precision = scale
				}
			}
		}
		amount := p.Sprintf(floatVerb(precision), math.Abs(v))
		symbol := code
		if err == nil {
			symbol = p.Sprint(currency.NarrowSymbol(unit))
		}
		sign := ""
		if v < 0 {
			sign = "-"
		}
		return sign + symbol + amount
	case numberPercent:
		if precision < 0 {
			precision = 0
		}
		// Values at or below 1 are fractions when "fraction" is set.
		if field.ConfigBool(cfg, "fraction", false) {
			v *= 100
		}
		return p.Sprintf(floatVerb(precision)+"%%", v)
	case numberRating:
		maxStars := field.ConfigInt(cfg, "max", 5)
		if maxStars <= 0 || maxStars > 10 {
			maxStars = 5
		}
		n := int(math.Round(min(max(v, 0), float64(maxStars))))
		return strings.Repeat("★", n) + strings.Repeat("☆", maxStars-n)
	case numberDuration:
		if math.Abs(v) >= maxDurationSeconds {
			return p.Sprintf("%.0fs", v)
		}
		return formatDuration(time.Duration(v * float64(time.Second)))
	default:
		if precision < 0 {
			if v == math.Trunc(v) {
				precision = 0
			} else {
				precision = 2
			}
		}
		s := p.Sprintf(floatVerb(precision), v)
		if prefix := field.ConfigString(cfg, "prefix", ""); prefix != "" {
			s = prefix + s
		}
		if suffix := field.ConfigString(cfg, "suffix", ""); suffix != "" {
			s += suffix
		}
		return s
	}
}

// floatVerb returns a %f verb with a fixed precision.
func floatVerb(precision int) string {
	return "%." + strconv.Itoa(min(precision, 12)) + "f"
}

func formatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	h, m, s := total/3600, total/60%60, total%60
	switch {
	case h > 0:
		return fmt.Sprintf("%s%dh %02dm", sign, h, m)
	case m > 0:
		return fmt.Sprintf("%s%dm %02ds", sign, m, s)
	default:
		return fmt.Sprintf("%s%ds", sign, s)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// parseTime accepts time.Time, ISO-8601-ish strings and unix timestamps
// (seconds, or milliseconds when large). hasClock is false for date-only
// input.
func parseTime(v any) (t time.Time, hasClock bool, ok bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false, false
		}
		return *x, true, !x.IsZero()
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, layout != "2006-01-02", true
			}
		}
		return time.Time{}, false, false
	}
	// Beyond year 9999 in milliseconds is not a timestamp.
	if f, isNum := field.Float(v); isNum && f > 0 && f < 253402300800000 {
		if f > 1e11 {
			return time.UnixMilli(int64(f)).UTC(), true, true
		}
		return time.Unix(int64(f), 0).UTC(), true, true
	}
	return time.Time{}, false, false
}
