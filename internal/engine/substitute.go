package engine

import (
	"github.com/alexisbeaulieu97/deskpilot/internal/tmpl"
)

// substituteParams returns a copy of params with {name} placeholders expanded
// from inputs, recursively through lists and nested maps. Substitution is
// best-effort: a string with any unresolved placeholder passes through
// unchanged, so macro authors can keep literal brace-bearing text.
func substituteParams(params map[string]any, inputs map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = substituteValue(v, inputs)
	}
	return out
}

func substituteValue(v any, inputs map[string]any) any {
	switch t := v.(type) {
	case string:
		return tmpl.Substitute(t, inputs)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = substituteValue(item, inputs)
		}
		return out
	case []string:
		out := make([]string, len(t))
		for i, item := range t {
			out[i] = tmpl.Substitute(item, inputs)
		}
		return out
	case map[string]any:
		return substituteParams(t, inputs)
	default:
		return v
	}
}
