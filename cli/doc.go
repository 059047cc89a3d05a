// Package cli implements the citet command-line interface.
//
// The CLI is the "editing surface" collaborator of the template engine:
// it feeds template text and field values to package tpl, raw text to
// package analyze, and displays whatever string or diagnostic list comes
// back. It never interprets template structure itself.
//
// Commands are declared on the [CLI] struct and dispatched by kong.
// Global flags configure logging (--log-*) and, when built with the
// pprof tag, profiling (--pprof-*). Defaults may be supplied in a YAML
// config file at <user-config-dir>/citet/config.yaml; command-line flags
// override config values.
package cli
