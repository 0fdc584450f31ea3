package tree

// Kind identifies the grammar production a node was built from.
type Kind int

// Node kinds.
const (
	KindInvalid Kind = iota
	KindStyleSheet
	KindAtRule
	KindAtKeyword
	KindAtRuleBlock
	KindRuleset
	KindRulesetBlock
	KindDeclarations
	KindPropertyDeclaration
	KindVariableDeclaration
	KindProperty
	KindValue
	KindFunction
	KindParenthesisBlock
	KindBracketBlock
	KindUri
	KindUriContent
	KindSelectors
	KindSelector
	KindCompoundSelector
	KindClassSelector
	KindIdSelector
	KindPseudoSelector
	KindPseudoFunction
	KindPseudoIdentifier
	KindTypeSelector
	KindNamespace
	KindAttributeSelector
	KindAttributeMatcherExpression
	KindAttributeMatcher
	KindCaseInsensitiveFlag
	KindSelectorCombinator
	KindKeyframesSelector
	KindHash
	KindPercentage
	KindDimension
	KindUnit
	KindVariable
	KindIdentifier
	KindStringLiteral
	KindNumber
	KindUnicodeRange
	KindDelimiter
	KindImportant
	KindToken
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindStyleSheet: "style-sheet",
	KindAtRule: "at-rule",
	KindAtKeyword: "at-keyword",
	KindAtRuleBlock: "at-rule-block",
	KindRuleset: "ruleset",
	KindRulesetBlock: "ruleset-block",
	KindDeclarations: "declarations",
	KindPropertyDeclaration: "property-declaration",
	KindVariableDeclaration: "variable-declaration",
	KindProperty: "property",
	KindValue: "value",
	KindFunction: "function",
	KindParenthesisBlock: "parenthesis-block",
	KindBracketBlock: "bracket-block",
	KindUri: "uri",
	KindUriContent: "uri-content",
	KindSelectors: "selectors",
	KindSelector: "selector",
	KindCompoundSelector: "compound-selector",
	KindClassSelector: "class-selector",
	KindIdSelector: "id-selector",
	KindPseudoSelector: "pseudo-selector",
	KindPseudoFunction: "pseudo-function",
	KindPseudoIdentifier: "pseudo-identifier",
	KindTypeSelector: "type-selector",
	KindNamespace: "namespace",
	KindAttributeSelector: "attribute-selector",
	KindAttributeMatcherExpression: "attribute-matcher-expression",
	KindAttributeMatcher: "attribute-matcher",
	KindCaseInsensitiveFlag: "case-insensitive-flag",
	KindSelectorCombinator: "selector-combinator",
	KindKeyframesSelector: "keyframes-selector",
	KindHash: "hash",
	KindPercentage: "percentage",
	KindDimension: "dimension",
	KindUnit: "unit",
	KindVariable: "variable",
	KindIdentifier: "identifier",
	KindStringLiteral: "string-literal",
	KindNumber: "number",
	KindUnicodeRange: "unicode-range",
	KindDelimiter: "delimiter",
	KindImportant: "important",
	KindToken: "token",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindStyleSheet; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}
