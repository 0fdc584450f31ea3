// Package compatibility provides lint rules about browser support.
//
// Rules in this package:
//   - font-face-browser-compatibility: "@font-face" sources for a support level
//   - obsolete-properties: properties dropped from the standard
package compatibility
