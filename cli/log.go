package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/citetool/citet/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As kong parses the --log-format flag, this method is called, allowing the
// logger to be configured early enough to affect messages during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"json"    enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                       help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before kong begins parsing, so the logger is
// configured regardless of flag position.
//
// logFormat and logLevel configure the logger through TextUnmarshaler as
// flags are parsed, but boolean flags like --log-pretty never pass through
// that interface; this pre-scan catches them.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		negated := strings.HasPrefix(arg, "--no-log-")
		if !negated && !strings.HasPrefix(arg, "--log-") {
			continue
		}

		name, value := arg, ""

		assigned := false
		if eq := strings.IndexByte(arg, '='); eq >= 0 {
			name, value = arg[:eq], arg[eq+1:]
			assigned = true
		}

		// Non-boolean flags consume the next argument when no value was
		// assigned with '='.
		consumeValue := func() string {
			if assigned {
				return value
			}

			if i+1 < len(args) && len(args[i+1]) > 0 && args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return ""
		}

		// Boolean flags default to true (or false when negated) unless
		// explicitly assigned with '='.
		boolValue := func() bool {
			if assigned {
				v, err := strconv.ParseBool(value)
				if err == nil {
					return v != negated // negation flips assigned values
				}
			}

			return !negated
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(consumeValue()))

		case "--log-format":
			_ = f.Format.UnmarshalText([]byte(consumeValue()))

		case "--log-pretty", "--no-log-pretty":
			f.Pretty = boolValue()
			log.Config(log.WithPretty(f.Pretty))

		case "--log-caller", "--no-log-caller":
			f.Caller = boolValue()
			log.Config(log.WithCaller(f.Caller))
		}
	}
}
