package tpl

import "strings"

// Placeholder is the positional substitution token recognized by
// [Substitute].
const Placeholder = "%s"

// Substitute replaces every occurrence of [Placeholder] in template,
// left to right, with the next value. Once values are exhausted the
// empty string is substituted; extra unused values are ignored.
//
// The pass is purely lexical: it does not validate bracket structure,
// and it replaces placeholders wherever they appear.
func Substitute(template string, values ...string) string {
	if !strings.Contains(template, Placeholder) {
		return template
	}

	var out strings.Builder

	out.Grow(len(template))

	next := 0

	for pos := 0; pos < len(template); {
		if template[pos] == '%' &&
			pos+1 < len(template) && template[pos+1] == 's' {
			if next < len(values) {
				out.WriteString(values[next])
			}

			next++
			pos += 2

			continue
		}

		out.WriteByte(template[pos])
		pos++
	}

	return out.String()
}

// Format substitutes values into template and evaluates the result.
// It is the composition Evaluate(Substitute(template, values...)) and
// the only entry point external collaborators need.
func Format(template string, values ...string) (string, error) {
	return Evaluate(Substitute(template, values...))
}
