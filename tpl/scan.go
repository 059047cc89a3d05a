package tpl

import (
	"log/slog"
	"strings"
)

// Kind classifies an addend by its delimiter pair.
type Kind int

const (
	// KindExpression is a '[...]' span whose value is computed by the
	// collapse rule.
	KindExpression Kind = iota

	// KindLiteral is a '{...}' span whose value is its raw, opaque text.
	KindLiteral
)

// addend is one group within a parent group's content. Content holds the
// inner text with the outer delimiter pair stripped.
type addend struct {
	content string
	kind    Kind
}

// statement is a maximal run of addends joined by '+'.
type statement []addend

// statements splits content into statements of addends.
//
// The scanner tracks bracket and brace balance independently. The active
// delimiter kind is seeded from the first byte of each addend; the addend
// ends when its active-kind balance returns to zero. A '+' at that point
// joins the next addend into the current statement; any other boundary
// finalizes the statement and begins a new one. Bracket characters inside
// a nested literal never move the bracket balance: literal content is
// opaque.
func statements(content string) ([]statement, error) {
	var (
		stmts []statement
		stmt  statement
	)

	pos := 0
	for pos < len(content) {
		add, next, err := scanAddend(content, pos)
		if err != nil {
			return nil, err
		}

		stmt = append(stmt, add)

		if next < len(content) && content[next] == '+' {
			// Operator: the next addend joins the current statement.
			if next+1 >= len(content) {
				return nil, ErrMalformed.
					Wrap(ErrDanglingOperator).
					With(slog.Int("offset", next))
			}

			pos = next + 1

			continue
		}

		// End of text or a non-'+' boundary: the statement is complete.
		stmts = append(stmts, stmt)
		stmt = nil
		pos = next
	}

	return stmts, nil
}

// scanAddend scans one complete addend beginning at start and returns it
// along with the offset of the first byte past its closing delimiter.
func scanAddend(content string, start int) (addend, int, error) {
	switch content[start] {
	case '[':
		return scanExpression(content, start)
	case '{':
		return scanLiteral(content, start)
	default:
		return addend{}, 0, ErrMalformed.
			Wrap(ErrBadAddendStart).
			With(
				slog.Int("offset", start),
				slog.String("found", content[start:start+1]),
			)
	}
}

// scanExpression scans a '[...]'-delimited addend. Escaped delimiters
// keep their backslash in the accumulated content, and brackets inside a
// nested literal do not count toward the bracket balance.
func scanExpression(content string, start int) (addend, int, error) {
	var inner strings.Builder

	brackets, braces := 0, 0

	for pos := start; pos < len(content); pos++ {
		c := content[pos]

		if c == '\\' && pos+1 < len(content) && isDelimiter(content[pos+1]) {
			// Escaped delimiter: balance unaffected, backslash retained.
			inner.WriteByte('\\')
			inner.WriteByte(content[pos+1])
			pos++

			continue
		}

		switch c {
		case '{':
			braces++
		case '}':
			if braces > 0 {
				braces--
			}
		case '[':
			if braces == 0 {
				brackets++
			}
		case ']':
			if braces == 0 {
				brackets--
				if brackets == 0 {
					return addend{
						kind:    KindExpression,
						content: inner.String(),
					}, pos + 1, nil
				}
			}
		}

		if pos > start {
			inner.WriteByte(c)
		}
	}

	return addend{}, 0, ErrMalformed.
		Wrap(ErrUnterminatedGroup).
		With(slog.Int("offset", start), slog.String("kind", "expression"))
}

// scanLiteral scans a '{...}'-delimited addend. Escaped delimiters drop
// their backslash, and brackets are ordinary characters: literal content
// is never parsed for nested groups.
func scanLiteral(content string, start int) (addend, int, error) {
	var inner strings.Builder

	braces := 0

	for pos := start; pos < len(content); pos++ {
		c := content[pos]

		if c == '\\' && pos+1 < len(content) && isDelimiter(content[pos+1]) {
			// Escaped delimiter: balance unaffected, backslash dropped.
			inner.WriteByte(content[pos+1])
			pos++

			continue
		}

		switch c {
		case '{':
			braces++
		case '}':
			braces--
			if braces == 0 {
				return addend{
					kind:    KindLiteral,
					content: inner.String(),
				}, pos + 1, nil
			}
		}

		if pos > start {
			inner.WriteByte(c)
		}
	}

	return addend{}, 0, ErrMalformed.
		Wrap(ErrUnterminatedGroup).
		With(slog.Int("offset", start), slog.String("kind", "literal"))
}

// isDelimiter reports whether c is a group delimiter character.
func isDelimiter(c byte) bool {
	return c == '[' || c == ']' || c == '{' || c == '}'
}
