package catalog

import "sort"

// Namespace identifies one of the independent vocabulary tables.
type Namespace int

// Vocabulary namespaces.
const (
	AtRules Namespace = iota
	Properties
	Functions
)

func (n Namespace) String() string {
	switch n {
	case AtRules:
		return "at-rule"
	case Properties:
		return "property"
	case Functions:
		return "function"
	default:
		return "unknown"
	}
}

// CaseMode controls how a namespace compares names.
type CaseMode int

// Case modes.
const (
	CaseInsensitive CaseMode = iota
	CaseSensitive
)

// Descriptor describes a standard at-rule, property or function.
type Descriptor struct {
	Name         string // canonical lower-case name
	Obsolete     bool
	Experimental bool
	LessOnly     bool   // built into the Less compiler, not CSS
	URL          string // reference documentation
}

const mdnBase = "https://developer.mozilla.org/en-US/docs/Web/CSS/"

// Link returns the reference documentation for the descriptor.
func (d *Descriptor) Link() string {
	if d.URL != "" {
		return d.URL
	}
	if d.LessOnly {
		return "https://lesscss.org/functions/#" + d.Name
	}
	return mdnBase + d.Name
}

// Entry is the classification of one name.
type Entry struct {
	Name       string // name submitted to the table, vendor prefix removed
	Namespace  Namespace
	Vendor     Vendor      // zero when the name carries no vendor prefix
	Descriptor *Descriptor // nil when the name is unknown
}

// IsKnown reports whether the name resolved to a standard descriptor.
func (e Entry) IsKnown() bool {
	return e.Descriptor != nil
}

// IsVendorPrefixed reports whether the raw name started with a vendor prefix.
func (e Entry) IsVendorPrefixed() bool {
	return !e.Vendor.IsZero()
}

// IsObsolete reports whether the standard descriptor is flagged obsolete.
func (e Entry) IsObsolete() bool {
	return e.Descriptor != nil && e.Descriptor.Obsolete
}

// IsExperimental reports whether the standard descriptor is flagged experimental.
func (e Entry) IsExperimental() bool {
	return e.Descriptor != nil && e.Descriptor.Experimental
}

// Options selects the per-namespace case policy and the dialect.
type Options struct {
	AtRuleCase   CaseMode
	PropertyCase CaseMode
	FunctionCase CaseMode
	Less         bool // Less built-in functions are known
}

// Catalog is a read-only view over the standard tables.
type Catalog struct {
	opts Options
}

var (
	// exact and folded indexes per namespace, built in init
	exact  = map[Namespace]map[string]*Descriptor{}
	folded = map[Namespace]map[string]*Descriptor{}

	defaultCatalog *Catalog
	lessCatalog    *Catalog
)

func init() {
	index(AtRules, atRules)
	index(Properties, properties)
	index(Functions, functions)

	defaultCatalog = New(Options{})
	lessCatalog = New(Options{Less: true})
}

func index(ns Namespace, table []Descriptor) {
	exact[ns] = make(map[string]*Descriptor, len(table))
	folded[ns] = make(map[string]*Descriptor, len(table))
	for i := range table {
		d := &table[i]
		exact[ns][d.Name] = d
		folded[ns][fold(d.Name)] = d
	}
}

// New returns a catalog view with the given options.
func New(opts Options) *Catalog {
	return &Catalog{opts: opts}
}

// Default returns the CSS catalog with case-insensitive lookups.
func Default() *Catalog {
	return defaultCatalog
}

// Less returns the catalog used for Less sources.
func Less() *Catalog {
	return lessCatalog
}

// Options returns the options the catalog was built with.
func (c *Catalog) Options() Options {
	return c.opts
}

// AtRule classifies an at-rule keyword, without the leading '@'.
func (c *Catalog) AtRule(name string) Entry {
	return c.lookup(AtRules, c.opts.AtRuleCase, name)
}

// Property classifies a property name.
func (c *Catalog) Property(name string) Entry {
	if len(name) > 2 && name[0] == '-' && name[1] == '-' {
		return Entry{Name: name, Namespace: Properties, Descriptor: &customProperty}
	}
	return c.lookup(Properties, c.opts.PropertyCase, name)
}

// Function classifies a function name.
func (c *Catalog) Function(name string) Entry {
	e := c.lookup(Functions, c.opts.FunctionCase, name)
	if e.Descriptor != nil && e.Descriptor.LessOnly && !c.opts.Less {
		e.Descriptor = nil
	}
	return e
}

func (c *Catalog) lookup(ns Namespace, mode CaseMode, raw string) Entry {
	vendor, name := StripVendor(raw)
	e := Entry{Name: name, Namespace: ns, Vendor: vendor}
	if mode == CaseSensitive {
		e.Descriptor = exact[ns][name]
	} else {
		e.Descriptor = folded[ns][fold(name)]
	}
	return e
}

// Names returns the sorted canonical names of a namespace.
func Names(ns Namespace) []string {
	names := make([]string, 0, len(exact[ns]))
	for name := range exact[ns] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// customProperty describes every "--name" custom property.
var customProperty = Descriptor{
	Name: "--*",
	URL:  "https://www.w3.org/TR/css-variables-1/",
}
