package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// fieldLabels are the citation field names offered as completions inside an
// expression group.
var fieldLabels = []string{
	"author",
	"doi",
	"edition",
	"editor",
	"isbn",
	"issue",
	"journal",
	"month",
	"pages",
	"publisher",
	"title",
	"url",
	"volume",
	"year",
}

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes. Delimiters, the join operator, the escape character, and
// whitespace all break words.
func isWordBoundary(r rune) bool {
	switch r {
	case '[', ']', '{', '}', '+', '\\', '%', ' ', '\t':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// inExpressionGroup reports whether the byte offset sits inside an open
// expression group, where label completions make sense. Brackets inside a
// literal group are plain text and do not count.
func inExpressionGroup(input string, offset int) bool {
	if offset > len(input) {
		offset = len(input)
	}

	brackets, braces := 0, 0

	for pos := 0; pos < offset; pos++ {
		switch input[pos] {
		case '\\':
			pos++ // skip escaped byte

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
			if braces == 0 && brackets > 0 {
				brackets--
			}
		}
	}

	return brackets > 0 && braces == 0
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. It returns the matches (ranked best-first) and the word boundaries.
// Completions are offered only inside an expression group; an empty word
// immediately after the opener lists every label.
func computeMatches(input string, cursor int) (
	matches fuzzy.Matches,
	wordStart, wordEnd int,
) {
	word, wordStart, wordEnd := wordBounds(input, cursor)

	if !inExpressionGroup(input, wordStart) {
		return nil, wordStart, wordEnd
	}

	if word == "" {
		// Return all candidates as unfiltered matches.
		matches = make(fuzzy.Matches, len(fieldLabels))
		for i, c := range fieldLabels {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches, wordStart, wordEnd
	}

	return fuzzy.Find(word, fieldLabels), wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		// Check if adding this candidate would exceed width.
		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth

		// If this is the last candidate, no need to reserve ellipsis space.
		if i == len(matches)-1 {
			break
		}
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}
