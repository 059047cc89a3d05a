// Package tpl implements the citation template language: a grammar of
// literal text blocks and conditional expression blocks joined by a
// concatenation operator, whose defining property is that an expression
// block silently collapses (dropping its literal separators) when any of
// its nested field values is empty. A citation template therefore renders
// correctly whether or not optional bibliographic fields (publisher, page
// number, access date, ...) are supplied, with no per-field conditionals
// in the caller.
//
// # Grammar
//
// Informal EBNF:
//
//	Template   → Statement*
//	Statement  → Addend ('+' Addend)*
//	Addend     → Expression | Literal
//	Expression → '[' Template ']'
//	Literal    → '{' opaque text '}'
//
// An Expression's value is computed recursively; a Literal's value is its
// raw text, never re-parsed. Two addends adjacent without a '+' start a
// new statement, a tolerated artifact of the scanning algorithm that
// well-formed templates do not exercise.
//
// Delimiters may be escaped with a backslash ('\[', '\]', '\{', '\}') to
// appear as ordinary characters. Escapes inside an expression retain the
// backslash in the accumulated text; escapes inside a literal drop it.
//
// # Placeholders
//
// The two-character token "%s" is a positional placeholder. [Substitute]
// replaces each occurrence, left to right, with the next field value,
// before the structural pass ever runs.
//
// # Collapse rule
//
// For each statement, if any expression addend evaluates to the empty
// string, the statement's value is the concatenation of the expression
// values alone: every literal addend in that statement is suppressed.
// Otherwise the statement's value is the concatenation of all addends in
// order. A statement with no expression addends never collapses.
//
// # Example
//
//	out, err := tpl.Format("[[%s]+{, }+[%s]]", "Smith", "Jones")
//	// out == "Smith, Jones"
//
//	out, err = tpl.Format("[[%s]+{, }+[%s]]", "Smith", "")
//	// out == "Smith" — the ", " separator collapsed away
//
// All functions are pure: same inputs yield the same output, no state is
// held across calls, and concurrent use requires no locking.
package tpl
