package catalog

// atRules lists the standard at-rules, without the leading '@'.
var atRules = []Descriptor{
	{Name: "charset"},
	{Name: "import"},
	{Name: "namespace"},
	{Name: "media"},
	{Name: "supports"},
	{Name: "page"},
	{Name: "font-face"},
	{Name: "keyframes"},
	{Name: "counter-style"},
	{Name: "font-feature-values"},
	{Name: "swash"},
	{Name: "ornaments"},
	{Name: "annotation"},
	{Name: "stylistic"},
	{Name: "styleset"},
	{Name: "character-variant"},
	{Name: "font-palette-values"},
	{Name: "layer"},
	{Name: "container"},
	{Name: "property"},
	{Name: "scope"},
	{Name: "starting-style"},
	{Name: "top-left-corner"},
	{Name: "top-left"},
	{Name: "top-center"},
	{Name: "top-right"},
	{Name: "top-right-corner"},
	{Name: "bottom-left-corner"},
	{Name: "bottom-left"},
	{Name: "bottom-center"},
	{Name: "bottom-right"},
	{Name: "bottom-right-corner"},
	{Name: "left-top"},
	{Name: "left-middle"},
	{Name: "left-bottom"},
	{Name: "right-top"},
	{Name: "right-middle"},
	{Name: "right-bottom"},
	{Name: "footnote"},

	// Obsolete
	{Name: "document", Obsolete: true},
	{Name: "viewport", Obsolete: true},

	// Drafts
	{Name: "apply", Experimental: true},
	{Name: "custom-media", Experimental: true},
	{Name: "custom-selector", Experimental: true},
	{Name: "nest", Experimental: true},
	{Name: "position-try", Experimental: true},
	{Name: "view-transition", Experimental: true},
}
