package isa

import (
	"strings"
)

// Unresolved is shown in place of a field the template names but the
// layout doesn't define.
const Unresolved = "****"

// Render substitutes field values into a template.
func Render(t Template, fields Fields, formatters Formatters) string {
	var b strings.Builder
	for _, p := range t {
		if !p.IsField {
			b.WriteString(p.Text)
			continue
		}
		v, ok := fields[p.Text]
		switch {
		case !ok:
			b.WriteString(Unresolved)
		case formatters[p.Text] != nil:
			b.WriteString(formatters[p.Text](v))
		default:
			b.WriteString(formatHex(v))
		}
	}
	return b.String()
}
