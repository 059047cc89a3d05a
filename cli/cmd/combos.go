package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/citetool/citet/log"
	"github.com/citetool/citet/tpl"
)

// maxComboValues bounds the power set to 4096 renderings.
const maxComboValues = 12

// Combos renders a template once for every subset of its values, showing how
// the collapse rule degrades output as fields go missing.
type Combos struct {
	Template string   `arg:"" help:"Template text"                   name:"template"`
	Values   []string `arg:"" help:"Values bound to %s placeholders" name:"values"   optional:""`

	Unique bool `help:"Suppress subsets producing duplicate output." negatable:""`
}

// Run executes the combos command.
func (c *Combos) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	if len(c.Values) > maxComboValues {
		return tpl.NewError("too many values for subset rendering").
			With(
				slog.Int("values", len(c.Values)),
				slog.Int("max", maxComboValues),
			)
	}

	seen := make(map[string]struct{})
	w := stdout(ctx)

	for _, subset := range subsets(c.Values) {
		result, err := tpl.Format(c.Template, subset...)
		if err != nil {
			return tpl.WrapError(err).
				With(slog.String("command", "combos"))
		}

		if c.Unique {
			if _, dup := seen[result]; dup {
				continue
			}

			seen[result] = struct{}{}
		}

		fmt.Fprintf(w, "%-40s %s\n", describeSubset(subset), result)
	}

	log.DebugContext(ctx, "combos rendered",
		slog.Int("values", len(c.Values)),
		slog.Bool("unique", c.Unique),
	)

	return nil
}

// subsets returns every subset of values, from all-present to all-absent.
// Positions are preserved: an excluded value is replaced with the empty
// string so placeholder order never shifts.
func subsets(values []string) [][]string {
	count := 1 << len(values)
	result := make([][]string, 0, count)

	// Iterate masks high-to-low so all-present prints first.
	for mask := count - 1; mask >= 0; mask-- {
		subset := make([]string, len(values))

		for i, v := range values {
			if mask&(1<<i) != 0 {
				subset[i] = v
			}
		}

		result = append(result, subset)
	}

	return result
}

// describeSubset renders a subset as a compact field list for display.
func describeSubset(subset []string) string {
	present := make([]string, 0, len(subset))

	for _, v := range subset {
		if v != "" {
			present = append(present, v)
		}
	}

	if len(present) == 0 {
		return "(none)"
	}

	return strings.Join(present, ",")
}
