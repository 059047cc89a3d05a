package tpl

import "strings"

// Evaluate interprets text as a tree of groups and returns its rendered
// value.
//
// Empty input and input whose first byte is neither '[' nor '{' are
// returned unchanged; the latter is the base case for text nested inside
// expression groups. Otherwise the text is split into statements, each
// statement is rendered by the collapse rule, and the results are
// concatenated with no separator.
//
// Structural defects the scanner cannot tolerate (an unterminated group,
// a byte where an addend must start, a trailing operator) return an error
// wrapping [ErrMalformed]. Callers render such templates as invalid
// rather than retrying.
func Evaluate(text string) (string, error) {
	if text == "" {
		return text, nil
	}

	if text[0] != '[' && text[0] != '{' {
		return text, nil
	}

	stmts, err := statements(text)
	if err != nil {
		return "", err
	}

	var out strings.Builder

	for _, stmt := range stmts {
		value, err := evalStatement(stmt)
		if err != nil {
			return "", err
		}

		out.WriteString(value)
	}

	return out.String(), nil
}

// evalStatement renders one statement by the collapse rule: if any
// expression addend evaluates to the empty string, only the expression
// values are joined and every literal addend is suppressed. Otherwise all
// addends are joined in order. A statement with no expression addends
// always yields the full join.
func evalStatement(stmt statement) (string, error) {
	var (
		full     strings.Builder
		exprOnly strings.Builder
		collapse bool
	)

	for _, add := range stmt {
		switch add.kind {
		case KindExpression:
			value, err := Evaluate(add.content)
			if err != nil {
				return "", err
			}

			if value == "" {
				collapse = true
			}

			full.WriteString(value)
			exprOnly.WriteString(value)

		case KindLiteral:
			full.WriteString(add.content)
		}
	}

	if collapse {
		return exprOnly.String(), nil
	}

	return full.String(), nil
}
