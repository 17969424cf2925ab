package adapter

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/dkoosis/fieldkit/pkg/container"
	"github.com/dkoosis/fieldkit/pkg/field"
)

// Validate reports every structural problem of a converted schema: missing
// keys, duplicate sibling keys, missing types, option fields without
// options, empty containers, inverted bounds and nesting beyond the depth
// cap. It returns nil for a sound schema.
func Validate(defs []field.Definition) error {
	var result *multierror.Error
	validateLevel(defs, "", 0, &result)
	return result.ErrorOrNil()
}

func validateLevel(defs []field.Definition, parent string, depth int, result **multierror.Error) {
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		key := d.Key()
		path := key
		if key == "" {
			path = fmt.Sprintf("#%d", i)
		}
		if parent != "" {
			path = parent + "." + path
		}
		fail := func(format string, args ...any) {
			*result = multierror.Append(*result, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
		}

		if key == "" {
			fail("missing id or name")
		} else if seen[key] {
			fail("duplicate key %q", key)
		}
		seen[key] = true

		typeKey := strings.TrimSpace(d.TypeKey())
		if typeKey == "" {
			fail("missing field type")
			continue
		}
		cat := field.Classify(typeKey)
		switch {
		case cat == field.CategoryRank && len(field.Options(d.Config)) == 0:
			fail("rank field has no options")
		case cat == field.CategorySelect && len(field.Options(d.Config)) == 0 &&
			!field.TypeIs(typeKey, "tags") && !field.ConfigBool(d.Config, "allow_other", false):
			fail("select field has no options")
		}
		if v := d.Validation; v.Min != nil && v.Max != nil && *v.Min > *v.Max {
			fail("min %g is greater than max %g", *v.Min, *v.Max)
		}
		if v := d.Validation; v.MaxLength > 0 && v.MinLength > v.MaxLength {
			fail("min_length %d is greater than max_length %d", v.MinLength, v.MaxLength)
		}

		if !cat.Container() {
			continue
		}
		if minItems, maxItems := container.Limits(d.Config); maxItems > 0 && minItems > maxItems {
			fail("min_items %d is greater than max_items %d", minItems, maxItems)
		}
		if len(d.Children) == 0 {
			fail("%s has no children", cat)
			continue
		}
		if depth+1 > container.DefaultMaxDepth {
			fail("nested deeper than %d levels", container.DefaultMaxDepth)
			continue
		}
		validateLevel(d.Children, path, depth+1, result)
	}
}
