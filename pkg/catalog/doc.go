// Package catalog is the standard CSS vocabulary: vendor prefixes and the
// known at-rules, properties and functions.
//
// The tables are built once at package initialisation and never mutated,
// so a *Catalog is safe for concurrent use without locking.
//
//	entry := catalog.Default().Property("-webkit-transition")
//	entry.Vendor    // catalog.Webkit
//	entry.Name      // "transition"
//	entry.IsKnown() // true
package catalog
