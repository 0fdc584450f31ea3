package lint

import (
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// =============================================================================
// Severity
// =============================================================================

// Severity is re-exported from core so rule packages only import lint.
type Severity = core.Severity

// Severity levels for issues.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// ParseSeverity converts a string to a Severity value.
func ParseSeverity(s string) (Severity, bool) {
	return core.ParseSeverity(s)
}

// =============================================================================
// Issues
// =============================================================================

// Issue represents a lint finding.
type Issue struct {
	RuleID   string
	Severity Severity
	Message  string
	File     string
	Pos      token.Position
	EndPos   token.Position // zero for line-level issues

	// Remediation metadata
	DocumentationURL string
	RelatedInfo      []RelatedInfo // secondary locations
}

// RelatedInfo provides an additional location for an issue.
type RelatedInfo struct {
	FilePath string
	Pos      token.Position
	EndPos   token.Position
	Message  string
}

// Line returns the 1-based line of the issue.
func (i *Issue) Line() int {
	return i.Pos.Line
}

// Secondary attaches a secondary location to the issue.
func (i *Issue) Secondary(n tree.Node, msg string) *Issue {
	span := n.Span()
	i.RelatedInfo = append(i.RelatedInfo, RelatedInfo{
		FilePath: i.File,
		Pos:      span.Start,
		EndPos:   span.End,
		Message:  msg,
	})
	return i
}

// =============================================================================
// Check Interfaces
// =============================================================================

// Check is a configured rule instance for one file. It implements
// VisitorCheck or SubscriptionCheck.
type Check any

// VisitorCheck runs its own full traversal of the tree. Implementations
// embed tree.BaseVisitor, bind themselves, and override the visit
// methods they need.
type VisitorCheck interface {
	tree.Visitor

	// Begin is called with the pass before the traversal starts.
	Begin(pass *Pass)
}

// SubscriptionCheck receives only the nodes of the kinds it subscribes
// to, in document order.
type SubscriptionCheck interface {
	// Kinds returns the node kinds the check subscribes to.
	Kinds() []tree.Kind

	// VisitNode is called for each node of a subscribed kind.
	VisitNode(pass *Pass, n tree.Node)
}

// Finisher is implemented by checks that report after the traversal.
type Finisher interface {
	Finish(pass *Pass)
}
