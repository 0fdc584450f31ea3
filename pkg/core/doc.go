// Package core defines the shared language of the LeapCSS system.
//
// This package contains:
//   - Diagnostic vocabulary (Severity, RuleInfo, ParamInfo)
//   - The source languages (css, less) and their file conventions
//
// The Golden Rule: pkg/core imports ONLY pkg/catalog and stdlib.
// All other packages depend on core, not the reverse.
package core
