// Package pitfall provides lint rules for code that is valid but almost
// certainly a mistake.
//
// Rules in this package:
//   - duplicated-selectors: the same selector twice in one scope
//   - empty-rules: rulesets without content
package pitfall
