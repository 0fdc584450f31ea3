// Package convention provides lint rules about naming conventions.
//
// Rules in this package:
//   - selector-naming-convention: class selectors must match a pattern
package convention
