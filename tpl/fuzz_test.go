package tpl

import (
	"strings"
	"testing"
)

// FuzzEvaluate verifies the evaluator never panics and that structural
// errors are reported rather than thrown, whatever the input.
func FuzzEvaluate(f *testing.F) {
	// Seed corpus with known shapes
	f.Add("")
	f.Add("plain")
	f.Add("[abc]")
	f.Add("{abc}")
	f.Add("[[%s]+{, }+[%s]]")
	f.Add("[{a}+{b}]")
	f.Add("[{a[b}]")
	f.Add(`[{a\}b}]`)
	f.Add(`[[a\]b]]`)
	f.Add("[a]{b}")
	f.Add("[a")
	f.Add("{a}+")
	f.Add("]}")
	f.Add("[[[[[]]]]]")

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Evaluate panicked on input %q: %v", input, r)
			}
		}()

		got, err := Evaluate(input)
		if err != nil {
			return
		}

		// Passthrough law: non-group input must come back unchanged.
		if input != "" && input[0] != '[' && input[0] != '{' && got != input {
			t.Errorf("Evaluate(%q) = %q, want input unchanged", input, got)
		}

		// Output of well-formed input never grows beyond the input, since
		// evaluation only strips delimiters and drops collapsed literals.
		if len(got) > len(input) {
			t.Errorf("Evaluate(%q) = %q, output longer than input", input, got)
		}
	})
}

// FuzzSubstitute verifies substitution is total and purely lexical.
func FuzzSubstitute(f *testing.F) {
	f.Add("[%s]", "a", "b")
	f.Add("%s%s", "", "x")
	f.Add("no placeholders", "a", "b")
	f.Add("%", "a", "b")

	f.Fuzz(func(t *testing.T, template, v1, v2 string) {
		got := Substitute(template, v1, v2)

		// Every placeholder is consumed.
		count := strings.Count(template, Placeholder)
		if count == 0 && got != template {
			t.Errorf("Substitute(%q) = %q, want unchanged", template, got)
		}
	})
}
