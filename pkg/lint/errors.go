package lint

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapcss/pkg/token"
)

// ErrUnknownRule is returned when configuration names a rule that is not
// registered.
var ErrUnknownRule = errors.New("unknown rule")

// ConfigError reports an invalid rule parameter. It is raised while the
// analyzer is configured, before any file is analyzed.
type ConfigError struct {
	Repository string // language repository key, e.g. "css"
	RuleID     string
	RuleName   string
	Param      string
	Actual     string // set for out-of-domain values
	Expected   string // the allowed values, quoted
	Reason     string
}

func (e *ConfigError) Error() string {
	reason := e.Reason
	if e.Expected != "" {
		reason = fmt.Sprintf("parameter value is not valid.\nActual: '%s'\nExpected: %s", e.Actual, e.Expected)
	}
	return fmt.Sprintf("Check %s:%s (%s): %s", e.Repository, e.RuleID, e.RuleName, reason)
}

// AnalysisError reports an unexpected failure inside a check. Unlike a
// parse error it is fatal for the run.
type AnalysisError struct {
	File   string
	RuleID string
	Pos    token.Position // last node the check was given, if known
	Cause  error
}

func (e *AnalysisError) Error() string {
	msg := "Unable to analyze file: " + e.File
	if e.RuleID != "" {
		msg += fmt.Sprintf(" (check %s", e.RuleID)
		if e.Pos.Line > 0 {
			msg += fmt.Sprintf(" at line %d, column %d", e.Pos.Line, e.Pos.Column)
		}
		msg += ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
