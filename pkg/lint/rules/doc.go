// Package rules groups the built-in stylesheet checks.
//
// Rules are organized by group:
//   - validity: unknown at-rules, functions and properties
//   - convention: naming conventions
//   - compatibility: browser support
//   - pitfall: valid code that is almost certainly a mistake
//
// The parsing-error rule is registered by package lint itself.
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/leapcss/pkg/lint/rules"
package rules
