package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The YAML document must be a mapping. Keys correspond to flag names;
// hyphens and underscores are interchangeable, so both "log-level" and
// "log_level" configure --log-level. Nested mappings flatten with a
// hyphen joint: a "log:" section with a "level:" entry also configures
// --log-level.
//
// Example config file:
//
//	log:
//	  level: debug
//	  format: text
//	  pretty: true
//
// Command-line flags override config file values. A malformed config
// file yields an empty configuration rather than an error, so a broken
// config never locks the user out of the CLI.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return config{}, nil
	}

	doc := map[string]any{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return config{}, nil
	}

	flat := config{}
	flatten(doc, "", flat)

	return flat, nil
}

// config implements [kong.Resolver] for YAML configs, keyed by
// normalized flag name.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[normalizeKey(flag.Name)]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten walks a parsed YAML mapping, joining nested keys with hyphens
// and normalizing leaf values into the string forms kong parses.
func flatten(doc map[string]any, prefix string, out config) {
	for key, value := range doc {
		name := normalizeKey(key)
		if prefix != "" {
			name = prefix + "-" + name
		}

		switch v := value.(type) {
		case map[string]any:
			flatten(v, name, out)

		case int:
			// Kong requires numbers as strings for parsing
			out[name] = strconv.Itoa(v)

		case int64:
			out[name] = strconv.FormatInt(v, 10)

		case uint64:
			out[name] = strconv.FormatUint(v, 10)

		case float64:
			out[name] = strconv.FormatFloat(v, 'f', -1, 64)

		default:
			out[name] = v
		}
	}
}

// normalizeKey maps config keys onto kong flag names, which always use
// hyphens.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), "_", "-")
}
