package analyze

import (
	"regexp"
	"strings"
)

// labelPattern matches one non-nested bracket span. A span cannot itself
// contain '[' or ']', so the match never crosses group boundaries and
// nesting is not interpreted.
var labelPattern = regexp.MustCompile(`\[([^\[\]]*)\]`)

// ExtractLabels finds every non-nested bracket span in spec, trims each
// span's inner text, and returns the distinct values in first-seen
// order. A later duplicate of an already-seen label is dropped, not
// re-inserted. The result is nil when spec contains no spans.
//
// This is used to seed argument names from free-form shorthand such as
// "[Author] wrote [Title]".
func ExtractLabels(spec string) []string {
	matches := labelPattern.FindAllStringSubmatch(spec, -1)
	if matches == nil {
		return nil
	}

	var (
		labels []string
		seen   = make(map[string]struct{}, len(matches))
	)

	for _, m := range matches {
		label := strings.TrimSpace(m[1])
		if _, ok := seen[label]; ok {
			continue
		}

		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	return labels
}
