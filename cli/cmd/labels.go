package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citetool/citet/analyze"
	"github.com/citetool/citet/log"
)

// Labels lists the bracketed labels referenced by a template or shorthand
// spec, one per line, in first-appearance order.
type Labels struct {
	Spec string `arg:"" help:"Template or shorthand text (omit to use --file)" name:"spec" optional:""`
}

// Run executes the labels command.
func (l *Labels) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	text, err := templateInput(ctx, l.Spec)
	if err != nil {
		return err
	}

	labels := analyze.ExtractLabels(text)

	log.DebugContext(ctx, "labels extracted",
		slog.Int("count", len(labels)),
	)

	w := stdout(ctx)

	for _, label := range labels {
		fmt.Fprintln(w, label)
	}

	return nil
}
