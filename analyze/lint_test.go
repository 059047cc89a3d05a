package analyze_test

import (
	"strings"
	"testing"

	"github.com/citetool/citet/analyze"
)

func TestLint_Balanced(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"[a]",
		"{a}",
		"[[%s]+{, }+[%s]]",
		"[{a}+{b}]",
		"plain text without groups",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			if issues := analyze.Lint(input); len(issues) != 0 {
				t.Errorf("Lint(%q) = %v, want no issues", input, issues)
			}
		})
	}
}

func TestLint_Structural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unclosed_bracket",
			input: "[a",
			want:  []string{"Unclosed bracket/brace detected"},
		},
		{
			name:  "unclosed_brace",
			input: "{a",
			want:  []string{"Unclosed bracket/brace detected"},
		},
		{
			name:  "unmatched_closer",
			input: "a]",
			want:  []string{"Unmatched ']' at 1"},
		},
		{
			name:  "unmatched_close_brace",
			input: "a}b",
			want:  []string{"Unmatched '}' at 1"},
		},
		{
			name:  "mismatched_pair",
			input: "[a}",
			want:  []string{"Unmatched '}' at 2"},
		},
		{
			name:  "crossed_pairs",
			input: "[{a]b}",
			want: []string{
				"Unmatched ']' at 3",
				"Unmatched '}' at 5",
			},
		},
		{
			name:  "one_issue_for_many_unclosed",
			input: "[[[{{{",
			want:  []string{"Unclosed bracket/brace detected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := analyze.Lint(tt.input)

			if len(issues) != len(tt.want) {
				t.Fatalf("Lint(%q) = %v, want %d issues",
					tt.input, issues, len(tt.want))
			}

			for i, issue := range issues {
				if issue.Message != tt.want[i] {
					t.Errorf("Lint(%q) issue %d = %q, want %q",
						tt.input, i, issue.Message, tt.want[i])
				}
			}
		})
	}
}

func TestLint_Warnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty_literal",
			input: "{}",
			want:  "Empty literal '{}' has no effect",
		},
		{
			name:  "nested_empty_literal",
			input: "[[a]+{}]",
			want:  "Empty literal '{}' has no effect",
		},
		{
			name:  "doubled_operator",
			input: "[a]++[b]",
			want:  "Consecutive '+' operators",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := analyze.Lint(tt.input)

			found := false

			for _, issue := range issues {
				if issue.Message == tt.want {
					found = true

					break
				}
			}

			if !found {
				t.Errorf("Lint(%q) = %v, want message %q",
					tt.input, issues, tt.want)
			}
		})
	}
}

// TestLint_OffsetsPointAtTheDefect verifies every positional issue
// carries the byte index the message names.
func TestLint_OffsetsPointAtTheDefect(t *testing.T) {
	t.Parallel()

	issues := analyze.Lint("a]b}c")

	if len(issues) != 2 {
		t.Fatalf("Lint() = %v, want 2 issues", issues)
	}

	for _, issue := range issues {
		if issue.Offset < 0 {
			t.Errorf("issue %q has no offset", issue.Message)

			continue
		}

		if !strings.HasSuffix(issue.Message,
			"at "+string(rune('0'+issue.Offset))) {
			t.Errorf("issue %q does not name offset %d",
				issue.Message, issue.Offset)
		}
	}
}
