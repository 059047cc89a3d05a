// Package analyze provides static checks over raw citation template and
// spec-shorthand text. It shares the template grammar's delimiter
// conventions with package tpl but has no runtime dependency on it: both
// checks are stateless single passes over the input string.
//
// [Lint] reports delimiter imbalance and stylistic warnings as advisory
// diagnostics; it never blocks formatting. [ExtractLabels] pulls unique
// field names out of a bracket-delimited shorthand spec, used to seed
// argument names for a template.
//
// Both functions operate on raw, unsubstituted text. Callers that expand
// editor-only tokens must do so before linting: the linter has no
// knowledge of such tokens.
package analyze
