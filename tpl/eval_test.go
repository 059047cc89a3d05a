package tpl_test

import (
	"errors"
	"testing"

	"github.com/citetool/citet/tpl"
)

func TestEvaluate_EmptyInput(t *testing.T) {
	t.Parallel()

	got, err := tpl.Evaluate("")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if got != "" {
		t.Errorf("Evaluate(%q) = %q, want %q", "", got, "")
	}
}

// TestEvaluate_Passthrough pins the base case: text that does not begin
// with a group delimiter is returned unchanged, even when it contains
// delimiters later on.
func TestEvaluate_Passthrough(t *testing.T) {
	t.Parallel()

	tests := []string{
		"plain text",
		"a]b",
		"a[b]c",
		"trailing brace }",
		"%s",
		"Smith, Jones",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			got, err := tpl.Evaluate(input)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", input, err)
			}

			if got != input {
				t.Errorf("Evaluate(%q) = %q, want input unchanged", input, got)
			}
		})
	}
}

func TestEvaluate_Structured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single_literal",
			input: "{abc}",
			want:  "abc",
		},
		{
			name:  "single_expression",
			input: "[abc]",
			want:  "abc",
		},
		{
			name:  "no_expression_never_collapses",
			input: "[{a}+{b}]",
			want:  "ab",
		},
		{
			name:  "literal_content_is_opaque",
			input: "[{a[b}]",
			want:  "a[b",
		},
		{
			name:  "nonempty_expressions_keep_literals",
			input: "[[x]+{, }+[y]]",
			want:  "x, y",
		},
		{
			name:  "empty_expression_collapses_literals",
			input: "[[x]+{, }+[]]",
			want:  "x",
		},
		{
			name:  "leading_empty_expression_collapses",
			input: "[[]+{, }+[y]]",
			want:  "y",
		},
		{
			name:  "all_empty_expressions",
			input: "[[]+{, }+[]]",
			want:  "",
		},
		{
			name:  "nested_group_collapse_is_local",
			input: "[[{a}+[x]]+{; }+[y]]",
			want:  "ax; y",
		},
		{
			name:  "empty_literal_contributes_nothing",
			input: "[{}+{b}]",
			want:  "b",
		},
		{
			name:  "literal_escape_drops_backslash",
			input: `[{a\[b}]`,
			want:  "a[b",
		},
		{
			name:  "literal_escape_close_brace",
			input: `[{a\}b}]`,
			want:  "a}b",
		},
		{
			name:  "expression_escape_keeps_backslash",
			input: `[[a\]b]]`,
			want:  `a\]b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tpl.Evaluate(tt.input)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("Evaluate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestEvaluate_AdjacentAddends pins the tolerated malformed case: two
// addends adjacent without a '+' split into separate statements whose
// results concatenate directly. Collapse stays local to each statement,
// so a literal in its own statement survives an empty expression next
// door.
func TestEvaluate_AdjacentAddends(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "adjacent_literals",
			input: "[{a}{b}]",
			want:  "ab",
		},
		{
			name:  "literal_statement_survives_empty_neighbor",
			input: "[[x]{s}[]]",
			want:  "xs",
		},
		{
			name:  "adjacent_top_level_groups",
			input: "{a}{b}",
			want:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tpl.Evaluate(tt.input)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("Evaluate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		sentinel error
	}{
		{
			name:     "unterminated_expression",
			input:    "[a",
			sentinel: tpl.ErrUnterminatedGroup,
		},
		{
			name:     "unterminated_literal",
			input:    "{a",
			sentinel: tpl.ErrUnterminatedGroup,
		},
		{
			name:     "bare_byte_between_groups",
			input:    "[{a}x]",
			sentinel: tpl.ErrBadAddendStart,
		},
		{
			name:     "trailing_operator_inside_group",
			input:    "[{a}+]",
			sentinel: tpl.ErrDanglingOperator,
		},
		{
			name:     "operator_at_end_of_text",
			input:    "{a}+",
			sentinel: tpl.ErrDanglingOperator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tpl.Evaluate(tt.input)
			if err == nil {
				t.Fatalf("Evaluate(%q) expected error", tt.input)
			}

			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Evaluate(%q) error = %v, want %v",
					tt.input, err, tt.sentinel)
			}
		})
	}
}

// TestFormat_Citation exercises the end-to-end scenario: an author-pair
// template whose ", " separator must vanish when the second author is
// missing.
func TestFormat_Citation(t *testing.T) {
	t.Parallel()

	const template = "[[%s]+{, }+[%s]]"

	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{
			name:   "both_values",
			values: []string{"Smith", "Jones"},
			want:   "Smith, Jones",
		},
		{
			name:   "second_value_empty",
			values: []string{"Smith", ""},
			want:   "Smith",
		},
		{
			name:   "second_value_absent",
			values: []string{"Smith"},
			want:   "Smith",
		},
		{
			name:   "no_values",
			values: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tpl.Format(template, tt.values...)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q",
					template, tt.values, got, tt.want)
			}
		})
	}
}

func TestFormat_FullCitation(t *testing.T) {
	t.Parallel()

	// Book citation: author, title, then optional publisher and year.
	const template = "[[%s]+{. }+[{“}+[%s]+{”}]+[{ (}+[%s]+{, }+[%s]+{)}]]"

	got, err := tpl.Format(template, "Knuth", "TAOCP", "Addison-Wesley", "1968")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Knuth. “TAOCP” (Addison-Wesley, 1968)"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	// Dropping the publisher collapses the parenthesized group down to
	// the year alone; the outer statement keeps its literals because the
	// group still renders non-empty.
	got, err = tpl.Format(template, "Knuth", "TAOCP", "", "1968")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want = "Knuth. “TAOCP”1968"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
