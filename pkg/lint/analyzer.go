package lint

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapcss/pkg/catalog"
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/parser"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// FileState is the analysis state of one file.
type FileState int

// File states. A file moves from NotParsed to Parsed and ends in either
// Traversed or ParseFailed.
const (
	NotParsed FileState = iota
	Parsed
	Traversed
	ParseFailed
)

func (s FileState) String() string {
	switch s {
	case NotParsed:
		return "not-parsed"
	case Parsed:
		return "parsed"
	case Traversed:
		return "traversed"
	case ParseFailed:
		return "parse-failed"
	default:
		return "unknown"
	}
}

// FileResult is the outcome of analyzing one file.
type FileResult struct {
	Path       string
	State      FileState
	Sheet      *tree.StyleSheet   // nil when parsing failed
	ParseError *parser.ParseError // set when State is ParseFailed
	Issues     []Issue
}

// configuredRule is a rule whose parameters passed validation.
type configuredRule struct {
	def      RuleDef
	opts     Options
	severity Severity
}

// Analyzer runs lint rules against the files of one language.
type Analyzer struct {
	language *core.Language
	catalog  *catalog.Catalog
	registry *Registry
	logger   *slog.Logger

	rules        []configuredRule
	parsingError *configuredRule
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for parse failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// WithRegistry replaces the global rule registry.
func WithRegistry(r *Registry) Option {
	return func(a *Analyzer) { a.registry = r }
}

// WithCatalog replaces the language's default vocabulary catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *Analyzer) { a.catalog = c }
}

// NewAnalyzer creates an analyzer for lang. Every enabled rule is
// configured here: the first invalid parameter is returned as a
// *ConfigError before any file is seen.
func NewAnalyzer(config *Config, lang *core.Language, opts ...Option) (*Analyzer, error) {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{
		language: lang,
		catalog:  lang.Catalog(),
		registry: globalRegistry,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}

	for id := range config.RuleOptions {
		if _, ok := a.registry.ByID(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, id)
		}
	}

	for _, def := range a.registry.ByLanguage(lang.Name) {
		if config.IsDisabled(def.ID) {
			continue
		}
		options, err := def.Configure(lang.RepositoryKey, config.GetRuleOptions(def.ID))
		if err != nil {
			return nil, err
		}
		r := configuredRule{
			def:      def,
			opts:     options,
			severity: config.GetSeverity(def.ID, def.Severity),
		}
		if def.New == nil {
			if def.ID == ParsingErrorID {
				a.parsingError = &r
			}
			continue
		}
		switch check := def.New(options); check.(type) {
		case VisitorCheck, SubscriptionCheck:
		default:
			return nil, fmt.Errorf("rule %s: %T is neither a VisitorCheck nor a SubscriptionCheck", def.ID, check)
		}
		a.rules = append(a.rules, r)
	}
	return a, nil
}

// Language returns the language the analyzer was built for.
func (a *Analyzer) Language() *core.Language {
	return a.language
}

// RuleIDs returns the IDs of the active rules in execution order.
func (a *Analyzer) RuleIDs() []string {
	var ids []string
	if a.parsingError != nil {
		ids = append(ids, a.parsingError.def.ID)
	}
	for _, r := range a.rules {
		ids = append(ids, r.def.ID)
	}
	return ids
}

// AnalyzeFile parses src and runs every active check over the tree. A
// parse failure is not an error: the result is ParseFailed and carries
// the parse error, plus a parsing-error issue when that rule is enabled.
// The returned error is an *AnalysisError.
func (a *Analyzer) AnalyzeFile(path, src string) (*FileResult, error) {
	res := &FileResult{Path: path, State: NotParsed}

	p := parser.NewParser(src, parser.Options{Less: a.language.Less, Catalog: a.catalog})
	sheet, err := p.Parse()
	if err != nil {
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			return nil, &AnalysisError{File: path, Cause: err}
		}
		a.logger.Error("unable to parse file", "path", path, "error", err)
		res.State = ParseFailed
		res.ParseError = perr
		if a.parsingError != nil {
			pass := a.newPass(a.parsingError, path, src, nil)
			pass.ReportLine(perr.Line(), perr.Message)
			res.Issues = pass.Issues()
		}
		return res, nil
	}
	res.State = Parsed
	res.Sheet = sheet

	issues, err := a.Check(path, src, sheet)
	if err != nil {
		return nil, err
	}
	res.Issues = issues
	res.State = Traversed
	return res, nil
}

// Check runs every active check over an already parsed tree. Each check
// gets a fresh instance. Issues are grouped by rule ID and keep report
// order within a rule.
func (a *Analyzer) Check(path, src string, sheet *tree.StyleSheet) ([]Issue, error) {
	var issues []Issue
	for i := range a.rules {
		r := &a.rules[i]
		pass := a.newPass(r, path, src, sheet)
		if err := run(pass, r.def.New(r.opts)); err != nil {
			return nil, err
		}
		issues = append(issues, pass.Issues()...)
	}
	return issues, nil
}

func (a *Analyzer) newPass(r *configuredRule, path, src string, sheet *tree.StyleSheet) *Pass {
	return &Pass{
		File:     path,
		Source:   src,
		Sheet:    sheet,
		Language: a.language,
		rule:     &r.def,
		severity: r.severity,
		options:  r.opts,
	}
}

// run executes one check. A panic inside the check becomes an
// *AnalysisError naming the file, the rule and the last known position.
func run(pass *Pass, check Check) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &AnalysisError{
				File:   pass.File,
				RuleID: pass.rule.ID,
				Pos:    pass.position(),
				Cause:  fmt.Errorf("panic: %v", r),
			}
		}
	}()

	switch c := check.(type) {
	case VisitorCheck:
		if b, ok := c.(interface{ Bind(tree.Visitor) }); ok {
			b.Bind(c)
		}
		if tr, ok := c.(interface{ Trace(func(tree.Node)) }); ok {
			tr.Trace(func(n tree.Node) { pass.current = n })
		}
		if pass.Sheet != nil {
			pass.current = pass.Sheet
		}
		c.Begin(pass)
		tree.Walk(c, pass.Sheet)
	case SubscriptionCheck:
		kinds := make(map[tree.Kind]bool)
		for _, k := range c.Kinds() {
			kinds[k] = true
		}
		tree.Inspect(pass.Sheet, func(n tree.Node) bool {
			if kinds[n.Kind()] {
				pass.current = n
				c.VisitNode(pass, n)
			}
			return true
		})
	default:
		return &AnalysisError{
			File:   pass.File,
			RuleID: pass.rule.ID,
			Cause:  fmt.Errorf("%T is neither a VisitorCheck nor a SubscriptionCheck", check),
		}
	}

	if f, ok := check.(Finisher); ok {
		f.Finish(pass)
	}
	return nil
}
