package analyze

import (
	"fmt"
	"strings"
)

// Issue is one advisory diagnostic produced by [Lint]. Offset is the
// byte index the issue refers to, or -1 for issues concerning the whole
// template.
type Issue struct {
	Message string `json:"message" yaml:"message"`
	Offset  int    `json:"offset"  yaml:"offset"`
}

// String returns the display message for the issue.
func (i Issue) String() string { return i.Message }

// Lint scans template for delimiter imbalance and stylistic defects and
// returns the issues found, in scan order. It is pure, never fails, and
// returns nil for a balanced, warning-free template.
//
// The structural check walks the raw text once with a single stack of
// open delimiters. Every closer pops the stack: a closer with an empty
// stack or a mismatched opener is reported at its byte index. Openers
// left on the stack after the scan produce exactly one unclosed-group
// issue, not one per entry.
//
// Two substring warnings are emitted independently of the structural
// scan: an empty literal "{}" anywhere in the text, and two consecutive
// '+' operators anywhere in the text.
func Lint(template string) []Issue {
	var (
		issues []Issue
		stack  []byte
	)

	for pos := 0; pos < len(template); pos++ {
		switch template[pos] {
		case '[', '{':
			stack = append(stack, template[pos])

		case ']':
			if len(stack) == 0 || stack[len(stack)-1] != '[' {
				issues = append(issues, Issue{
					Message: fmt.Sprintf("Unmatched ']' at %d", pos),
					Offset:  pos,
				})
			}

			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case '}':
			if len(stack) == 0 || stack[len(stack)-1] != '{' {
				issues = append(issues, Issue{
					Message: fmt.Sprintf("Unmatched '}' at %d", pos),
					Offset:  pos,
				})
			}

			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) > 0 {
		issues = append(issues, Issue{
			Message: "Unclosed bracket/brace detected",
			Offset:  -1,
		})
	}

	if strings.Contains(template, "{}") {
		issues = append(issues, Issue{
			Message: "Empty literal '{}' has no effect",
			Offset:  strings.Index(template, "{}"),
		})
	}

	if strings.Contains(template, "++") {
		issues = append(issues, Issue{
			Message: "Consecutive '+' operators",
			Offset:  strings.Index(template, "++"),
		})
	}

	return issues
}
