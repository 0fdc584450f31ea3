package lint

// ParsingErrorID is the rule ID of parse failures.
const ParsingErrorID = "parsing-error"

func init() {
	Register(ParsingError)
}

// ParsingError turns a parse failure into a line-level issue. It has no
// check: the analyzer reports it when a file does not parse.
var ParsingError = RuleDef{
	ID:          ParsingErrorID,
	Name:        "CSS parser failure",
	Group:       "validity",
	Description: "Report files that cannot be parsed.",
	Severity:    SeverityError,

	Rationale: `A file that does not parse is not analyzed by any other rule, and
browsers drop the malformed part of the stylesheet, often silently.`,
	Fix: "Fix the syntax error on the reported line.",
}
