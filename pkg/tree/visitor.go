package tree

import "github.com/leapstack-labs/leapcss/pkg/token"

// Visitor has one method per node kind. Node.Accept selects the method,
// the implementation selects the behaviour.
type Visitor interface {
	VisitStyleSheet(n *StyleSheet)
	VisitAtRule(n *AtRule)
	VisitAtKeyword(n *AtKeyword)
	VisitAtRuleBlock(n *AtRuleBlock)
	VisitRuleset(n *Ruleset)
	VisitRulesetBlock(n *RulesetBlock)
	VisitDeclarations(n *Declarations)
	VisitPropertyDeclaration(n *PropertyDeclaration)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitProperty(n *Property)
	VisitValue(n *Value)
	VisitFunction(n *Function)
	VisitParenthesisBlock(n *ParenthesisBlock)
	VisitBracketBlock(n *BracketBlock)
	VisitUri(n *Uri)
	VisitUriContent(n *UriContent)
	VisitSelectors(n *Selectors)
	VisitSelector(n *Selector)
	VisitCompoundSelector(n *CompoundSelector)
	VisitClassSelector(n *ClassSelector)
	VisitIdSelector(n *IdSelector)
	VisitPseudoSelector(n *PseudoSelector)
	VisitPseudoFunction(n *PseudoFunction)
	VisitPseudoIdentifier(n *PseudoIdentifier)
	VisitTypeSelector(n *TypeSelector)
	VisitNamespace(n *Namespace)
	VisitAttributeSelector(n *AttributeSelector)
	VisitAttributeMatcherExpression(n *AttributeMatcherExpression)
	VisitAttributeMatcher(n *AttributeMatcher)
	VisitCaseInsensitiveFlag(n *CaseInsensitiveFlag)
	VisitSelectorCombinator(n *SelectorCombinator)
	VisitKeyframesSelector(n *KeyframesSelector)
	VisitHash(n *Hash)
	VisitPercentage(n *Percentage)
	VisitDimension(n *Dimension)
	VisitUnit(n *Unit)
	VisitVariable(n *Variable)
	VisitIdentifier(n *Identifier)
	VisitStringLiteral(n *StringLiteral)
	VisitNumber(n *Number)
	VisitUnicodeRange(n *UnicodeRange)
	VisitDelimiter(n *Delimiter)
	VisitImportant(n *Important)

	// VisitToken is called for every token. The default visits the
	// comments in its leading trivia.
	VisitToken(t *SyntaxToken)
	// VisitComment is called for each comment preceding t.
	VisitComment(t *SyntaxToken, comment token.Trivia)
}

// BaseVisitor implements Visitor by scanning children in source order.
// Embed it and call Bind with the outer value so that the scan dispatches
// to the overriding methods. An override that does not call ScanChildren
// prunes the subtree.
type BaseVisitor struct {
	self  Visitor
	trace func(Node)
}

// Bind sets the visitor that children are dispatched to.
func (b *BaseVisitor) Bind(v Visitor) {
	b.self = v
}

// Trace installs fn, called with every node the scan dispatches and again
// with the parent once the child returns normally. After a panic the last
// call names the node that was being visited.
func (b *BaseVisitor) Trace(fn func(Node)) {
	b.trace = fn
}

func (b *BaseVisitor) outer() Visitor {
	if b.self == nil {
		return b
	}
	return b.self
}

// ScanChildren visits the children of n.
func (b *BaseVisitor) ScanChildren(n Node) {
	v := b.outer()
	for _, c := range n.Children() {
		b.dispatch(c, v, n)
	}
}

// Scan visits n and its subtree with the bound visitor.
func (b *BaseVisitor) Scan(n Node) {
	if n != nil {
		b.dispatch(n, b.outer(), nil)
	}
}

func (b *BaseVisitor) dispatch(n Node, v Visitor, parent Node) {
	if b.trace == nil {
		n.Accept(v)
		return
	}
	b.trace(n)
	n.Accept(v)
	if parent != nil {
		b.trace(parent)
	}
}

// VisitStyleSheet implements Visitor.
func (b *BaseVisitor) VisitStyleSheet(n *StyleSheet) { b.ScanChildren(n) }

// VisitAtRule implements Visitor.
func (b *BaseVisitor) VisitAtRule(n *AtRule) { b.ScanChildren(n) }

// VisitAtKeyword implements Visitor.
func (b *BaseVisitor) VisitAtKeyword(n *AtKeyword) { b.ScanChildren(n) }

// VisitAtRuleBlock implements Visitor.
func (b *BaseVisitor) VisitAtRuleBlock(n *AtRuleBlock) { b.ScanChildren(n) }

// VisitRuleset implements Visitor.
func (b *BaseVisitor) VisitRuleset(n *Ruleset) { b.ScanChildren(n) }

// VisitRulesetBlock implements Visitor.
func (b *BaseVisitor) VisitRulesetBlock(n *RulesetBlock) { b.ScanChildren(n) }

// VisitDeclarations implements Visitor.
func (b *BaseVisitor) VisitDeclarations(n *Declarations) { b.ScanChildren(n) }

// VisitPropertyDeclaration implements Visitor.
func (b *BaseVisitor) VisitPropertyDeclaration(n *PropertyDeclaration) { b.ScanChildren(n) }

// VisitVariableDeclaration implements Visitor.
func (b *BaseVisitor) VisitVariableDeclaration(n *VariableDeclaration) { b.ScanChildren(n) }

// VisitProperty implements Visitor.
func (b *BaseVisitor) VisitProperty(n *Property) { b.ScanChildren(n) }

// VisitValue implements Visitor.
func (b *BaseVisitor) VisitValue(n *Value) { b.ScanChildren(n) }

// VisitFunction implements Visitor.
func (b *BaseVisitor) VisitFunction(n *Function) { b.ScanChildren(n) }

// VisitParenthesisBlock implements Visitor.
func (b *BaseVisitor) VisitParenthesisBlock(n *ParenthesisBlock) { b.ScanChildren(n) }

// VisitBracketBlock implements Visitor.
func (b *BaseVisitor) VisitBracketBlock(n *BracketBlock) { b.ScanChildren(n) }

// VisitUri implements Visitor.
func (b *BaseVisitor) VisitUri(n *Uri) { b.ScanChildren(n) }

// VisitUriContent implements Visitor.
func (b *BaseVisitor) VisitUriContent(n *UriContent) { b.ScanChildren(n) }

// VisitSelectors implements Visitor.
func (b *BaseVisitor) VisitSelectors(n *Selectors) { b.ScanChildren(n) }

// VisitSelector implements Visitor.
func (b *BaseVisitor) VisitSelector(n *Selector) { b.ScanChildren(n) }

// VisitCompoundSelector implements Visitor.
func (b *BaseVisitor) VisitCompoundSelector(n *CompoundSelector) { b.ScanChildren(n) }

// VisitClassSelector implements Visitor.
func (b *BaseVisitor) VisitClassSelector(n *ClassSelector) { b.ScanChildren(n) }

// VisitIdSelector implements Visitor.
func (b *BaseVisitor) VisitIdSelector(n *IdSelector) { b.ScanChildren(n) }

// VisitPseudoSelector implements Visitor.
func (b *BaseVisitor) VisitPseudoSelector(n *PseudoSelector) { b.ScanChildren(n) }

// VisitPseudoFunction implements Visitor.
func (b *BaseVisitor) VisitPseudoFunction(n *PseudoFunction) { b.ScanChildren(n) }

// VisitPseudoIdentifier implements Visitor.
func (b *BaseVisitor) VisitPseudoIdentifier(n *PseudoIdentifier) { b.ScanChildren(n) }

// VisitTypeSelector implements Visitor.
func (b *BaseVisitor) VisitTypeSelector(n *TypeSelector) { b.ScanChildren(n) }

// VisitNamespace implements Visitor.
func (b *BaseVisitor) VisitNamespace(n *Namespace) { b.ScanChildren(n) }

// VisitAttributeSelector implements Visitor.
func (b *BaseVisitor) VisitAttributeSelector(n *AttributeSelector) { b.ScanChildren(n) }

// VisitAttributeMatcherExpression implements Visitor.
func (b *BaseVisitor) VisitAttributeMatcherExpression(n *AttributeMatcherExpression) { b.ScanChildren(n) }

// VisitAttributeMatcher implements Visitor.
func (b *BaseVisitor) VisitAttributeMatcher(n *AttributeMatcher) { b.ScanChildren(n) }

// VisitCaseInsensitiveFlag implements Visitor.
func (b *BaseVisitor) VisitCaseInsensitiveFlag(n *CaseInsensitiveFlag) { b.ScanChildren(n) }

// VisitSelectorCombinator implements Visitor.
func (b *BaseVisitor) VisitSelectorCombinator(n *SelectorCombinator) { b.ScanChildren(n) }

// VisitKeyframesSelector implements Visitor.
func (b *BaseVisitor) VisitKeyframesSelector(n *KeyframesSelector) { b.ScanChildren(n) }

// VisitHash implements Visitor.
func (b *BaseVisitor) VisitHash(n *Hash) { b.ScanChildren(n) }

// VisitPercentage implements Visitor.
func (b *BaseVisitor) VisitPercentage(n *Percentage) { b.ScanChildren(n) }

// VisitDimension implements Visitor.
func (b *BaseVisitor) VisitDimension(n *Dimension) { b.ScanChildren(n) }

// VisitUnit implements Visitor.
func (b *BaseVisitor) VisitUnit(n *Unit) { b.ScanChildren(n) }

// VisitVariable implements Visitor.
func (b *BaseVisitor) VisitVariable(n *Variable) { b.ScanChildren(n) }

// VisitIdentifier implements Visitor.
func (b *BaseVisitor) VisitIdentifier(n *Identifier) { b.ScanChildren(n) }

// VisitStringLiteral implements Visitor.
func (b *BaseVisitor) VisitStringLiteral(n *StringLiteral) { b.ScanChildren(n) }

// VisitNumber implements Visitor.
func (b *BaseVisitor) VisitNumber(n *Number) { b.ScanChildren(n) }

// VisitUnicodeRange implements Visitor.
func (b *BaseVisitor) VisitUnicodeRange(n *UnicodeRange) { b.ScanChildren(n) }

// VisitDelimiter implements Visitor.
func (b *BaseVisitor) VisitDelimiter(n *Delimiter) { b.ScanChildren(n) }

// VisitImportant implements Visitor.
func (b *BaseVisitor) VisitImportant(n *Important) { b.ScanChildren(n) }

// VisitToken implements Visitor.
func (b *BaseVisitor) VisitToken(t *SyntaxToken) {
	v := b.outer()
	for _, tr := range t.Trivia {
		if tr.IsComment() {
			v.VisitComment(t, tr)
		}
	}
}

// VisitComment implements Visitor.
func (b *BaseVisitor) VisitComment(*SyntaxToken, token.Trivia) {}

// Walk runs one traversal of n with v.
func Walk(v Visitor, n Node) {
	if n != nil {
		n.Accept(v)
	}
}

// Inspect traverses n depth-first in source order and calls fn for each
// node, tokens included. If fn returns false the children of that node
// are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Inspect(c, fn)
	}
}
