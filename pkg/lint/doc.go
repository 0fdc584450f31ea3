// Package lint runs checks over parsed stylesheets.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/leapcss/pkg/lint/rules"
//
// A rule is a RuleDef. Its New factory returns a fresh check for every
// file, so a check may keep state for the file it is running over.
//
// # Checks
//
// A check is either a VisitorCheck or a SubscriptionCheck.
//
// A VisitorCheck embeds tree.BaseVisitor and overrides the visit methods
// it needs. An override that does not call ScanChildren prunes that
// subtree for this check only:
//
//	type emptyRules struct {
//		tree.BaseVisitor
//		pass *lint.Pass
//	}
//
//	func (c *emptyRules) Begin(pass *lint.Pass) { c.pass = pass }
//
//	func (c *emptyRules) VisitRuleset(n *tree.Ruleset) {
//		if n.Block.IsEmpty() {
//			c.pass.Report(n, "Remove this empty rule.")
//		}
//		c.ScanChildren(n)
//	}
//
// A SubscriptionCheck lists node kinds and receives the nodes of those
// kinds in document order.
//
// # Configuration
//
// Use Config to control which rules are enabled, their severity and their
// parameters:
//
//	config := lint.NewConfig()
//	config.Disable("empty-rules")
//	config.SetSeverity("unknown-functions", lint.SeverityError)
//	config.SetRuleOption("selector-naming-convention", "format", "^[a-z]+$")
//
// Parameters are validated by NewAnalyzer. An invalid value fails with a
// *ConfigError before any file is analyzed.
//
// # Analysis
//
//	analyzer, err := lint.NewAnalyzer(config, core.CSS)
//	result, err := analyzer.AnalyzeFile("a.css", src)
//
// A file that does not parse ends in the ParseFailed state and no check
// runs for it. A panic inside a check is returned as an *AnalysisError.
package lint
