package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Render executes body as a Go text/template against vars and returns the
// rendered text. Malformed templates and execution failures are returned to
// the caller; the engine records them, it never interprets template syntax
// itself.
func Render(body string, vars map[string]any) (string, error) {
	t, err := template.New("template").Option("missingkey=zero").Parse(body)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// Substitute expands {name} placeholders in s from inputs. The expansion is
// all-or-nothing: any unresolved placeholder, empty braces, or unbalanced
// brace leaves the whole string unchanged, so literal brace-bearing text
// survives untouched. Doubled braces escape to literals.
func Substitute(s string, inputs map[string]any) string {
	if !strings.ContainsAny(s, "{}") {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '{' && i+1 < len(s) && s[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(s) && s[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return s
			}
			name := s[i+1 : i+end]
			val, ok := inputs[name]
			if name == "" || !ok {
				return s
			}
			fmt.Fprint(&b, val)
			i += end + 1
		case c == '}':
			return s
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
