package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/citetool/citet/analyze"
	"github.com/citetool/citet/log"
	"github.com/citetool/citet/tpl"
)

// Lint reports structural problems in a template without evaluating it.
type Lint struct {
	Template string `arg:"" help:"Template text (omit to use --file)" name:"template" optional:""`
	Format   string `       help:"Report format"                                                  default:"text" enum:"text,json,yaml" short:"o"`
}

// report is the serializable form of a lint run.
type report struct {
	Template string          `json:"template" yaml:"template"`
	Issues   []analyze.Issue `json:"issues"   yaml:"issues"`
}

// Run executes the lint command.
func (l *Lint) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	text, err := templateInput(ctx, l.Template)
	if err != nil {
		return err
	}

	issues := analyze.Lint(text)

	log.DebugContext(ctx, "lint complete",
		slog.Int("issues", len(issues)),
	)

	w := stdout(ctx)

	switch l.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(report{Template: text, Issues: issues}); err != nil {
			return tpl.WrapError(err).
				With(slog.String("command", "lint"))
		}

	case "yaml":
		out, err := yaml.Marshal(report{Template: text, Issues: issues})
		if err != nil {
			return tpl.WrapError(err).
				With(slog.String("command", "lint"))
		}

		w.Write(out)

	default:
		if len(issues) == 0 {
			fmt.Fprintln(w, "no issues found")

			break
		}

		for _, issue := range issues {
			fmt.Fprintln(w, issue.String())
		}
	}

	return nil
}
