package compatibility

import (
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/lint"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

func init() {
	lint.Register(FontFaceBrowserCompatibility)
}

// Browser support levels, from the least to the most demanding.
const (
	LevelBasic   = "basic"
	LevelDeep    = "deep"
	LevelDeepest = "deepest"
)

// FontFaceBrowserCompatibility checks that "@font-face" rules declare
// their sources in a way the required browsers can load.
//
//	basic:   every url() of the main "src" is followed by a format() hint
//	deep:    basic, plus a preceding "src" with a single ".eot" url (IE9)
//	deepest: deep, plus an ".eot?#iefix" url in the main "src" (IE6 to IE8)
var FontFaceBrowserCompatibility = lint.RuleDef{
	ID:          "font-face-browser-compatibility",
	Name:        `"@font-face" rule should be made compatible with the required browsers`,
	Group:       "compatibility",
	Description: "Font sources should be declared for every browser of the required support level.",
	Severity:    lint.SeverityWarning,
	Params: []lint.Param{
		{
			Key:         "browser_support_level",
			Description: "Browsers to support: basic, deep or deepest",
			Type:        lint.ParamEnum,
			Default:     LevelBasic,
			Allowed:     []string{LevelBasic, LevelDeep, LevelDeepest},
		},
	},
	New: func(opts lint.Options) lint.Check {
		return &fontFaceCompatibility{level: opts.String("browser_support_level")}
	},

	Rationale: `Browsers download the first source they believe they support. Without
format() hints they may download fonts they cannot use, and older versions of
Internet Explorer need ".eot" sources declared in a specific way.`,
	BadExample: `@font-face {
  font-family: "MyFont";
  src: url("myfont.woff2"), url("myfont.woff");
}`,
	GoodExample: `@font-face {
  font-family: "MyFont";
  src: url("myfont.woff2") format("woff2"), url("myfont.woff") format("woff");
}`,
}

type fontFaceCompatibility struct {
	tree.BaseVisitor
	pass  *lint.Pass
	level string
}

func (c *fontFaceCompatibility) Begin(pass *lint.Pass) { c.pass = pass }

func (c *fontFaceCompatibility) VisitAtRule(n *tree.AtRule) {
	if n.Is("font-face") && n.Block != nil {
		c.checkFontFace(n)
	}
	c.ScanChildren(n)
}

func (c *fontFaceCompatibility) checkFontFace(n *tree.AtRule) {
	var srcs []*tree.PropertyDeclaration
	for _, d := range n.Block.PropertyDeclarations() {
		if d.Property.Is("src") {
			srcs = append(srcs, d)
		}
	}
	if len(srcs) == 0 {
		c.pass.Report(n.Keyword, `Add a "src" property to this "@font-face" rule.`)
		return
	}
	main := srcs[len(srcs)-1]

	items := main.Value.Items
	for i, item := range items {
		uri, ok := item.(*tree.Uri)
		if !ok {
			continue
		}
		if i+1 >= len(items) || !isFormatHint(items[i+1]) {
			c.pass.Report(uri, `Add a "format()" hint after this "url()".`)
		}
	}

	if c.level == LevelBasic {
		return
	}
	if !hasCompatibilitySource(srcs[:len(srcs)-1]) {
		c.pass.Report(main.Property, `Add a preceding "src" declaration with a single ".eot" url.`)
	}

	if c.level == LevelDeep {
		return
	}
	if !hasIEFixSource(main) {
		c.pass.Report(main.Property, `Add an ".eot" url with the "?#iefix" suffix to this "src" declaration.`)
	}
}

func isFormatHint(n tree.Node) bool {
	f, ok := n.(*tree.Function)
	return ok && strings.EqualFold(f.FunctionName(), "format")
}

// hasCompatibilitySource reports whether one of decls is a "src" with a
// single ".eot" url.
func hasCompatibilitySource(decls []*tree.PropertyDeclaration) bool {
	for _, d := range decls {
		uris := d.Value.Uris()
		if len(uris) == 1 && len(d.Value.Items) == 1 && isEOT(uris[0].URL()) {
			return true
		}
	}
	return false
}

func hasIEFixSource(d *tree.PropertyDeclaration) bool {
	for _, uri := range d.Value.Uris() {
		url := strings.ToLower(uri.URL())
		if isEOT(url) && strings.HasSuffix(url, "?#iefix") {
			return true
		}
	}
	return false
}

// isEOT reports whether url points to an ".eot" file, ignoring any query
// or fragment.
func isEOT(url string) bool {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return strings.HasSuffix(strings.ToLower(url), ".eot")
}
