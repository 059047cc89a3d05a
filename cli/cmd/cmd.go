package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/citetool/citet/tpl"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer command output goes to, honoring any writer
// configured on the kong parser. Falls back to os.Stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

type templateFileKey struct{}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// WithTemplateFile returns a new context.Context recording the template file
// path given with the global --file flag. An empty path means no file was
// given.
func WithTemplateFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, templateFileKey{}, path)
}

func templateFileFrom(ctx context.Context) string {
	path, _ := ctx.Value(templateFileKey{}).(string)

	return path
}

// templateInput resolves the template text for a command.
//
// A non-empty positional argument wins. Otherwise the template is read from
// the --file flag path, with "-" selecting stdin. Trailing newlines are
// stripped from file and stdin input so shell heredocs behave as expected.
func templateInput(ctx context.Context, arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}

	path := templateFileFrom(ctx)
	if path == "" {
		return "", tpl.NewError("no template given: pass one as an argument or with --file")
	}

	var (
		data []byte
		err  error
	)

	if path == stdinSource {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return "", tpl.WrapError(err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}
