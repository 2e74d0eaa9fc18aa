package step

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is the string-keyed parameter bag of a step spec. Accessors coerce
// loosely typed YAML values at build time and fall back to the given default
// when the key is absent.
type Params map[string]any

// String returns the value under key rendered as text, or def when absent.
func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	return fmt.Sprint(v)
}

// Int coerces the value under key to an int.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("parameter %q: cannot coerce %q to int", key, n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("parameter %q: cannot coerce %T to int", key, v)
	}
}

// Float coerces the value under key to a float64.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("parameter %q: cannot coerce %q to float", key, n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("parameter %q: cannot coerce %T to float", key, v)
	}
}

// Bool coerces the value under key to a bool.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}

	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("parameter %q: cannot coerce %q to bool", key, b)
		}
		return parsed, nil
	case int:
		return b != 0, nil
	default:
		return false, fmt.Errorf("parameter %q: cannot coerce %T to bool", key, v)
	}
}

// StringList returns the value under key as a list of strings. Scalar values
// become a single-element list; absent keys return nil.
func (p Params) StringList(key string) []string {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}

	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}
