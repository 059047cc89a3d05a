package cmd

import (
	"reflect"
	"testing"
)

func TestSubsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   [][]string
	}{
		{
			name:   "empty",
			values: nil,
			want:   [][]string{{}},
		},
		{
			name:   "single",
			values: []string{"a"},
			want:   [][]string{{"a"}, {""}},
		},
		{
			name:   "pair_preserves_positions",
			values: []string{"a", "b"},
			want: [][]string{
				{"a", "b"},
				{"", "b"},
				{"a", ""},
				{"", ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := subsets(tt.values)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("subsets(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestSubsetsCount(t *testing.T) {
	t.Parallel()

	values := []string{"a", "b", "c", "d", "e"}

	got := subsets(values)
	if len(got) != 1<<len(values) {
		t.Errorf("subsets() returned %d subsets, want %d", len(got), 1<<len(values))
	}

	// First subset is all-present, last is all-absent.
	if !reflect.DeepEqual(got[0], values) {
		t.Errorf("first subset = %v, want %v", got[0], values)
	}

	for _, v := range got[len(got)-1] {
		if v != "" {
			t.Errorf("last subset contains %q, want all empty", v)
		}
	}
}

func TestDescribeSubset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		subset []string
		want   string
	}{
		{name: "all_present", subset: []string{"a", "b"}, want: "a,b"},
		{name: "gap", subset: []string{"a", "", "c"}, want: "a,c"},
		{name: "none", subset: []string{"", ""}, want: "(none)"},
		{name: "empty", subset: nil, want: "(none)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := describeSubset(tt.subset); got != tt.want {
				t.Errorf("describeSubset(%v) = %q, want %q", tt.subset, got, tt.want)
			}
		})
	}
}
