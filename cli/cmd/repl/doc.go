// Package repl implements an interactive template editor with live
// rendering, inline diagnostics, and label completion.
package repl
