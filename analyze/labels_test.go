package analyze_test

import (
	"slices"
	"testing"

	"github.com/citetool/citet/analyze"
)

func TestExtractLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "no_spans",
			input: "plain shorthand",
			want:  nil,
		},
		{
			name:  "single_label",
			input: "[Author]",
			want:  []string{"Author"},
		},
		{
			name:  "dedup_preserves_first_seen_order",
			input: "[Author] wrote [Title] in [Author]",
			want:  []string{"Author", "Title"},
		},
		{
			name:  "inner_text_is_trimmed",
			input: "[ Author ] and [\tTitle ]",
			want:  []string{"Author", "Title"},
		},
		{
			name:  "trimmed_duplicates_collapse",
			input: "[Author] [ Author ]",
			want:  []string{"Author"},
		},
		{
			name:  "nesting_not_interpreted",
			input: "[[Author]]",
			want:  []string{"Author"},
		},
		{
			name:  "span_cannot_contain_opener",
			input: "[a[b]",
			want:  []string{"b"},
		},
		{
			name:  "empty_span_kept_once",
			input: "[] [ ] [x]",
			want:  []string{"", "x"},
		},
		{
			name:  "multiword_labels",
			input: "[Access Date], [Page Number]",
			want:  []string{"Access Date", "Page Number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := analyze.ExtractLabels(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExtractLabels(%q) = %v, want %v",
					tt.input, got, tt.want)
			}
		})
	}
}
