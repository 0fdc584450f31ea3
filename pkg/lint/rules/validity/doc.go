// Package validity provides lint rules for constructs browsers do not
// know about.
//
// Rules in this package:
//   - unknown-at-rules: @-rules missing from the standard vocabulary
//   - unknown-functions: functions missing from the standard vocabulary
//   - known-properties: properties missing from the standard vocabulary
//
// Vendor-prefixed names are never reported: vendor extensions are
// expected to be unknown.
package validity
