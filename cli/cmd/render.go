package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citetool/citet/log"
	"github.com/citetool/citet/tpl"
)

// Render substitutes values into a template and evaluates the result.
type Render struct {
	Template string   `arg:"" help:"Template text (omit to use --file)"     name:"template" optional:""`
	Values   []string `arg:"" help:"Values bound to %s placeholders"        name:"values"   optional:""`

	Strict bool `help:"Fail on malformed templates instead of printing a fallback." negatable:""`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	text, err := templateInput(ctx, r.Template)
	if err != nil {
		return err
	}

	result, err := tpl.Format(text, r.Values...)
	if err != nil {
		if r.Strict {
			return tpl.WrapError(err).
				With(slog.String("command", "render"))
		}

		// Malformed templates degrade to a visible fallback so batch
		// pipelines producing many citations never abort midway.
		log.DebugContext(ctx, "render fallback",
			slog.String("template", text),
			slog.Any("error", err),
		)
		fmt.Fprintln(stdout(ctx), "Engine error: "+err.Error())

		return nil
	}

	fmt.Fprintln(stdout(ctx), result)

	return nil
}
