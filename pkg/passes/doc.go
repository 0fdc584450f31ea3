// Package passes provides auxiliary traversals of a parsed stylesheet that
// are not lint checks: syntax highlighting, copy-paste detection tokens
// and size metrics.
//
// Each pass is a tree.Visitor or a plain walk over the tokens, and runs on
// a tree that parsed successfully.
package passes
