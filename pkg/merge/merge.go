// Package merge composes the effective config of a field from its three
// layers.
//
// Precedence (highest to lowest):
//
//  1. View config (per-surface overrides)
//  2. Instance config (the field definition's own config)
//  3. Registry defaults (the field type's default_config)
//
// The merge is shallow: a nested map in a higher layer replaces the whole
// value of the lower layer. Inputs are never mutated.
package merge

// Configs returns the effective config for one render pass. For every key k
// the result holds view[k] if present, else instance[k] if present, else
// defaults[k]. A key present with a nil value still counts as present.
// The result is never nil.
func Configs(defaults, instance, view map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(instance)+len(view))
	for _, layer := range [...]map[string]any{defaults, instance, view} {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}
