package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Property(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		known    bool
		vendor   Vendor
		stripped string
	}{
		{name: "standard", input: "color", known: true, stripped: "color"},
		{name: "upper case", input: "COLOR", known: true, stripped: "COLOR"},
		{name: "vendor prefixed", input: "-webkit-transition", known: true, vendor: Webkit, stripped: "transition"},
		{name: "vendor upper case", input: "-MOZ-Box-Sizing", known: true, vendor: Mozilla, stripped: "Box-Sizing"},
		{name: "office vendor", input: "mso-color", known: true, vendor: MicrosoftOffice, stripped: "color"},
		{name: "unknown", input: "colour", known: false, stripped: "colour"},
		{name: "vendor unknown", input: "-ms-colour", known: false, vendor: Microsoft, stripped: "colour"},
		{name: "custom property", input: "--main-bg", known: true, stripped: "--main-bg"},
		{name: "font-face descriptor", input: "src", known: true, stripped: "src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Default().Property(tt.input)
			assert.Equal(t, tt.known, e.IsKnown())
			assert.Equal(t, tt.vendor, e.Vendor)
			assert.Equal(t, tt.stripped, e.Name)
			assert.Equal(t, Properties, e.Namespace)
		})
	}
}

func TestCatalog_CaseSensitive(t *testing.T) {
	c := New(Options{PropertyCase: CaseSensitive, AtRuleCase: CaseSensitive})

	assert.True(t, c.Property("color").IsKnown())
	assert.False(t, c.Property("Color").IsKnown())
	assert.True(t, c.AtRule("media").IsKnown())
	assert.False(t, c.AtRule("MEDIA").IsKnown())

	// the function namespace keeps its own policy
	assert.True(t, c.Function("RGB").IsKnown())
}

func TestCatalog_AtRule(t *testing.T) {
	assert.True(t, Default().AtRule("media").IsKnown())
	assert.True(t, Default().AtRule("font-face").IsKnown())

	e := Default().AtRule("-webkit-keyframes")
	require.True(t, e.IsKnown())
	assert.Equal(t, Webkit, e.Vendor)
	assert.Equal(t, "keyframes", e.Descriptor.Name)

	assert.False(t, Default().AtRule("abc").IsKnown())
	assert.True(t, Default().AtRule("viewport").IsObsolete())
}

func TestCatalog_Function(t *testing.T) {
	assert.True(t, Default().Function("rgba").IsKnown())
	assert.True(t, Default().Function("translateX").IsKnown())
	assert.False(t, Default().Function("ab").IsKnown())

	// Less built-ins only resolve in the Less catalog.
	assert.False(t, Default().Function("darken").IsKnown())
	assert.True(t, Less().Function("darken").IsKnown())
	assert.True(t, Less().Function("rgb").IsKnown())
}

func TestCatalog_Flags(t *testing.T) {
	assert.True(t, Default().Property("clip").IsObsolete())
	assert.True(t, Default().Property("-webkit-box-flex").IsObsolete())
	assert.False(t, Default().Property("color").IsObsolete())
	assert.True(t, Default().Property("anchor-name").IsExperimental())
}

func TestDescriptor_Link(t *testing.T) {
	assert.Equal(t, mdnBase+"color", Default().Property("color").Descriptor.Link())
	assert.Equal(t, "https://lesscss.org/functions/#fade", Less().Function("fade").Descriptor.Link())
	assert.Equal(t, customProperty.URL, Default().Property("--x").Descriptor.Link())
}

func TestNames(t *testing.T) {
	names := Names(AtRules)
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "media")
}

func TestTablesHaveUniqueLowerCaseNames(t *testing.T) {
	for ns, table := range map[Namespace][]Descriptor{
		AtRules:    atRules,
		Properties: properties,
		Functions:  functions,
	} {
		seen := map[string]bool{}
		for _, d := range table {
			assert.Equal(t, fold(d.Name), d.Name, "%s %q is not lower case", ns, d.Name)
			assert.False(t, seen[d.Name], "%s %q is listed twice", ns, d.Name)
			seen[d.Name] = true
		}
	}
}
