package field

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Validate checks value against the definition's constraints and returns
// the first violation as a message suitable for Props.Error, or "".
// It never fails on malformed input; a value of the wrong shape is only
// reported when the field is required.
func Validate(def Definition, value any) string {
	v := def.Validation
	label := def.DisplayLabel()
	if IsEmpty(value) {
		if v.Required {
			return label + " is required"
		}
		return ""
	}
	if f, ok := Float(value); ok {
		if _, isString := value.(string); !isString {
			if v.Min != nil && f < *v.Min {
				return fmt.Sprintf("%s must be at least %s", label, formatBound(*v.Min))
			}
			if v.Max != nil && f > *v.Max {
				return fmt.Sprintf("%s must be at most %s", label, formatBound(*v.Max))
			}
		}
	}
	if s, ok := value.(string); ok {
		n := utf8.RuneCountInString(s)
		if v.MinLength > 0 && n < v.MinLength {
			return fmt.Sprintf("%s must be at least %d characters", label, v.MinLength)
		}
		if v.MaxLength > 0 && n > v.MaxLength {
			return fmt.Sprintf("%s must be at most %d characters", label, v.MaxLength)
		}
		if v.Pattern != "" {
			if re, err := regexp.Compile(v.Pattern); err == nil && !re.MatchString(s) {
				return label + " has an invalid format"
			}
		}
	}
	return ""
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
