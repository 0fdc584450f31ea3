package catalog

// properties lists the standard properties, including the @font-face,
// @counter-style, @property and @page descriptors.
var properties = []Descriptor{
	{Name: "align-content"},
	{Name: "align-items"},
	{Name: "align-self"},
	{Name: "all"},
	{Name: "animation"},
	{Name: "animation-composition"},
	{Name: "animation-delay"},
	{Name: "animation-direction"},
	{Name: "animation-duration"},
	{Name: "animation-fill-mode"},
	{Name: "animation-iteration-count"},
	{Name: "animation-name"},
	{Name: "animation-play-state"},
	{Name: "animation-timing-function"},
	{Name: "appearance"},
	{Name: "aspect-ratio"},
	{Name: "backdrop-filter"},
	{Name: "backface-visibility"},
	{Name: "background"},
	{Name: "background-attachment"},
	{Name: "background-blend-mode"},
	{Name: "background-clip"},
	{Name: "background-color"},
	{Name: "background-image"},
	{Name: "background-origin"},
	{Name: "background-position"},
	{Name: "background-position-x"},
	{Name: "background-position-y"},
	{Name: "background-repeat"},
	{Name: "background-size"},
	{Name: "block-size"},
	{Name: "border"},
	{Name: "border-block"},
	{Name: "border-block-color"},
	{Name: "border-block-end"},
	{Name: "border-block-end-color"},
	{Name: "border-block-end-style"},
	{Name: "border-block-end-width"},
	{Name: "border-block-start"},
	{Name: "border-block-start-color"},
	{Name: "border-block-start-style"},
	{Name: "border-block-start-width"},
	{Name: "border-block-style"},
	{Name: "border-block-width"},
	{Name: "border-bottom"},
	{Name: "border-bottom-color"},
	{Name: "border-bottom-left-radius"},
	{Name: "border-bottom-right-radius"},
	{Name: "border-bottom-style"},
	{Name: "border-bottom-width"},
	{Name: "border-collapse"},
	{Name: "border-color"},
	{Name: "border-end-end-radius"},
	{Name: "border-end-start-radius"},
	{Name: "border-image"},
	{Name: "border-image-outset"},
	{Name: "border-image-repeat"},
	{Name: "border-image-slice"},
	{Name: "border-image-source"},
	{Name: "border-image-width"},
	{Name: "border-inline"},
	{Name: "border-inline-color"},
	{Name: "border-inline-end"},
	{Name: "border-inline-end-color"},
	{Name: "border-inline-end-style"},
	{Name: "border-inline-end-width"},
	{Name: "border-inline-start"},
	{Name: "border-inline-start-color"},
	{Name: "border-inline-start-style"},
	{Name: "border-inline-start-width"},
	{Name: "border-inline-style"},
	{Name: "border-inline-width"},
	{Name: "border-left"},
	{Name: "border-left-color"},
	{Name: "border-left-style"},
	{Name: "border-left-width"},
	{Name: "border-radius"},
	{Name: "border-right"},
	{Name: "border-right-color"},
	{Name: "border-right-style"},
	{Name: "border-right-width"},
	{Name: "border-spacing"},
	{Name: "border-start-end-radius"},
	{Name: "border-start-start-radius"},
	{Name: "border-style"},
	{Name: "border-top"},
	{Name: "border-top-color"},
	{Name: "border-top-left-radius"},
	{Name: "border-top-right-radius"},
	{Name: "border-top-style"},
	{Name: "border-top-width"},
	{Name: "border-width"},
	{Name: "bottom"},
	{Name: "box-decoration-break"},
	{Name: "box-shadow"},
	{Name: "box-sizing"},
	{Name: "break-after"},
	{Name: "break-before"},
	{Name: "break-inside"},
	{Name: "caption-side"},
	{Name: "caret-color"},
	{Name: "clear"},
	{Name: "clip-path"},
	{Name: "clip-rule"},
	{Name: "color"},
	{Name: "color-interpolation"},
	{Name: "color-interpolation-filters"},
	{Name: "color-scheme"},
	{Name: "column-count"},
	{Name: "column-fill"},
	{Name: "column-gap"},
	{Name: "column-rule"},
	{Name: "column-rule-color"},
	{Name: "column-rule-style"},
	{Name: "column-rule-width"},
	{Name: "column-span"},
	{Name: "column-width"},
	{Name: "columns"},
	{Name: "contain"},
	{Name: "contain-intrinsic-block-size"},
	{Name: "contain-intrinsic-height"},
	{Name: "contain-intrinsic-inline-size"},
	{Name: "contain-intrinsic-size"},
	{Name: "contain-intrinsic-width"},
	{Name: "container"},
	{Name: "container-name"},
	{Name: "container-type"},
	{Name: "content"},
	{Name: "content-visibility"},
	{Name: "counter-increment"},
	{Name: "counter-reset"},
	{Name: "counter-set"},
	{Name: "cursor"},
	{Name: "cx"},
	{Name: "cy"},
	{Name: "d"},
	{Name: "direction"},
	{Name: "display"},
	{Name: "dominant-baseline"},
	{Name: "empty-cells"},
	{Name: "fill"},
	{Name: "fill-opacity"},
	{Name: "fill-rule"},
	{Name: "filter"},
	{Name: "flex"},
	{Name: "flex-basis"},
	{Name: "flex-direction"},
	{Name: "flex-flow"},
	{Name: "flex-grow"},
	{Name: "flex-shrink"},
	{Name: "flex-wrap"},
	{Name: "float"},
	{Name: "flood-color"},
	{Name: "flood-opacity"},
	{Name: "font"},
	{Name: "font-family"},
	{Name: "font-feature-settings"},
	{Name: "font-kerning"},
	{Name: "font-language-override"},
	{Name: "font-optical-sizing"},
	{Name: "font-palette"},
	{Name: "font-size"},
	{Name: "font-size-adjust"},
	{Name: "font-stretch"},
	{Name: "font-style"},
	{Name: "font-synthesis"},
	{Name: "font-variant"},
	{Name: "font-variant-alternates"},
	{Name: "font-variant-caps"},
	{Name: "font-variant-east-asian"},
	{Name: "font-variant-emoji"},
	{Name: "font-variant-ligatures"},
	{Name: "font-variant-numeric"},
	{Name: "font-variant-position"},
	{Name: "font-variation-settings"},
	{Name: "font-weight"},
	{Name: "forced-color-adjust"},
	{Name: "gap"},
	{Name: "grid"},
	{Name: "grid-area"},
	{Name: "grid-auto-columns"},
	{Name: "grid-auto-flow"},
	{Name: "grid-auto-rows"},
	{Name: "grid-column"},
	{Name: "grid-column-end"},
	{Name: "grid-column-start"},
	{Name: "grid-row"},
	{Name: "grid-row-end"},
	{Name: "grid-row-start"},
	{Name: "grid-template"},
	{Name: "grid-template-areas"},
	{Name: "grid-template-columns"},
	{Name: "grid-template-rows"},
	{Name: "hanging-punctuation"},
	{Name: "height"},
	{Name: "hyphenate-character"},
	{Name: "hyphens"},
	{Name: "image-orientation"},
	{Name: "image-rendering"},
	{Name: "inline-size"},
	{Name: "inset"},
	{Name: "inset-block"},
	{Name: "inset-block-end"},
	{Name: "inset-block-start"},
	{Name: "inset-inline"},
	{Name: "inset-inline-end"},
	{Name: "inset-inline-start"},
	{Name: "isolation"},
	{Name: "justify-content"},
	{Name: "justify-items"},
	{Name: "justify-self"},
	{Name: "left"},
	{Name: "letter-spacing"},
	{Name: "lighting-color"},
	{Name: "line-break"},
	{Name: "line-height"},
	{Name: "list-style"},
	{Name: "list-style-image"},
	{Name: "list-style-position"},
	{Name: "list-style-type"},
	{Name: "margin"},
	{Name: "margin-block"},
	{Name: "margin-block-end"},
	{Name: "margin-block-start"},
	{Name: "margin-bottom"},
	{Name: "margin-inline"},
	{Name: "margin-inline-end"},
	{Name: "margin-inline-start"},
	{Name: "margin-left"},
	{Name: "margin-right"},
	{Name: "margin-top"},
	{Name: "marker"},
	{Name: "marker-end"},
	{Name: "marker-mid"},
	{Name: "marker-start"},
	{Name: "mask"},
	{Name: "mask-border"},
	{Name: "mask-border-mode"},
	{Name: "mask-border-outset"},
	{Name: "mask-border-repeat"},
	{Name: "mask-border-slice"},
	{Name: "mask-border-source"},
	{Name: "mask-border-width"},
	{Name: "mask-clip"},
	{Name: "mask-composite"},
	{Name: "mask-image"},
	{Name: "mask-mode"},
	{Name: "mask-origin"},
	{Name: "mask-position"},
	{Name: "mask-repeat"},
	{Name: "mask-size"},
	{Name: "mask-type"},
	{Name: "math-depth"},
	{Name: "math-style"},
	{Name: "max-block-size"},
	{Name: "max-height"},
	{Name: "max-inline-size"},
	{Name: "max-width"},
	{Name: "min-block-size"},
	{Name: "min-height"},
	{Name: "min-inline-size"},
	{Name: "min-width"},
	{Name: "mix-blend-mode"},
	{Name: "object-fit"},
	{Name: "object-position"},
	{Name: "offset"},
	{Name: "offset-anchor"},
	{Name: "offset-distance"},
	{Name: "offset-path"},
	{Name: "offset-position"},
	{Name: "offset-rotate"},
	{Name: "opacity"},
	{Name: "order"},
	{Name: "orphans"},
	{Name: "outline"},
	{Name: "outline-color"},
	{Name: "outline-offset"},
	{Name: "outline-style"},
	{Name: "outline-width"},
	{Name: "overflow"},
	{Name: "overflow-anchor"},
	{Name: "overflow-block"},
	{Name: "overflow-clip-margin"},
	{Name: "overflow-inline"},
	{Name: "overflow-wrap"},
	{Name: "overflow-x"},
	{Name: "overflow-y"},
	{Name: "overscroll-behavior"},
	{Name: "overscroll-behavior-block"},
	{Name: "overscroll-behavior-inline"},
	{Name: "overscroll-behavior-x"},
	{Name: "overscroll-behavior-y"},
	{Name: "padding"},
	{Name: "padding-block"},
	{Name: "padding-block-end"},
	{Name: "padding-block-start"},
	{Name: "padding-bottom"},
	{Name: "padding-inline"},
	{Name: "padding-inline-end"},
	{Name: "padding-inline-start"},
	{Name: "padding-left"},
	{Name: "padding-right"},
	{Name: "padding-top"},
	{Name: "page"},
	{Name: "page-break-after"},
	{Name: "page-break-before"},
	{Name: "page-break-inside"},
	{Name: "paint-order"},
	{Name: "perspective"},
	{Name: "perspective-origin"},
	{Name: "place-content"},
	{Name: "place-items"},
	{Name: "place-self"},
	{Name: "pointer-events"},
	{Name: "position"},
	{Name: "print-color-adjust"},
	{Name: "quotes"},
	{Name: "r"},
	{Name: "resize"},
	{Name: "right"},
	{Name: "rotate"},
	{Name: "row-gap"},
	{Name: "ruby-align"},
	{Name: "ruby-position"},
	{Name: "rx"},
	{Name: "ry"},
	{Name: "scale"},
	{Name: "scroll-behavior"},
	{Name: "scroll-margin"},
	{Name: "scroll-margin-block"},
	{Name: "scroll-margin-block-end"},
	{Name: "scroll-margin-block-start"},
	{Name: "scroll-margin-bottom"},
	{Name: "scroll-margin-inline"},
	{Name: "scroll-margin-inline-end"},
	{Name: "scroll-margin-inline-start"},
	{Name: "scroll-margin-left"},
	{Name: "scroll-margin-right"},
	{Name: "scroll-margin-top"},
	{Name: "scroll-padding"},
	{Name: "scroll-padding-block"},
	{Name: "scroll-padding-block-end"},
	{Name: "scroll-padding-block-start"},
	{Name: "scroll-padding-bottom"},
	{Name: "scroll-padding-inline"},
	{Name: "scroll-padding-inline-end"},
	{Name: "scroll-padding-inline-start"},
	{Name: "scroll-padding-left"},
	{Name: "scroll-padding-right"},
	{Name: "scroll-padding-top"},
	{Name: "scroll-snap-align"},
	{Name: "scroll-snap-stop"},
	{Name: "scroll-snap-type"},
	{Name: "scrollbar-color"},
	{Name: "scrollbar-gutter"},
	{Name: "scrollbar-width"},
	{Name: "shape-image-threshold"},
	{Name: "shape-margin"},
	{Name: "shape-outside"},
	{Name: "shape-rendering"},
	{Name: "speak"},
	{Name: "speak-as"},
	{Name: "src"},
	{Name: "stop-color"},
	{Name: "stop-opacity"},
	{Name: "stroke"},
	{Name: "stroke-dasharray"},
	{Name: "stroke-dashoffset"},
	{Name: "stroke-linecap"},
	{Name: "stroke-linejoin"},
	{Name: "stroke-miterlimit"},
	{Name: "stroke-opacity"},
	{Name: "stroke-width"},
	{Name: "tab-size"},
	{Name: "table-layout"},
	{Name: "text-align"},
	{Name: "text-align-last"},
	{Name: "text-anchor"},
	{Name: "text-combine-upright"},
	{Name: "text-decoration"},
	{Name: "text-decoration-color"},
	{Name: "text-decoration-line"},
	{Name: "text-decoration-skip-ink"},
	{Name: "text-decoration-style"},
	{Name: "text-decoration-thickness"},
	{Name: "text-emphasis"},
	{Name: "text-emphasis-color"},
	{Name: "text-emphasis-position"},
	{Name: "text-emphasis-style"},
	{Name: "text-indent"},
	{Name: "text-justify"},
	{Name: "text-orientation"},
	{Name: "text-overflow"},
	{Name: "text-rendering"},
	{Name: "text-shadow"},
	{Name: "text-transform"},
	{Name: "text-underline-offset"},
	{Name: "text-underline-position"},
	{Name: "text-wrap"},
	{Name: "top"},
	{Name: "touch-action"},
	{Name: "transform"},
	{Name: "transform-box"},
	{Name: "transform-origin"},
	{Name: "transform-style"},
	{Name: "transition"},
	{Name: "transition-behavior"},
	{Name: "transition-delay"},
	{Name: "transition-duration"},
	{Name: "transition-property"},
	{Name: "transition-timing-function"},
	{Name: "translate"},
	{Name: "unicode-bidi"},
	{Name: "unicode-range"},
	{Name: "user-select"},
	{Name: "vector-effect"},
	{Name: "vertical-align"},
	{Name: "visibility"},
	{Name: "white-space"},
	{Name: "widows"},
	{Name: "width"},
	{Name: "will-change"},
	{Name: "word-break"},
	{Name: "word-spacing"},
	{Name: "writing-mode"},
	{Name: "x"},
	{Name: "y"},
	{Name: "z-index"},
	{Name: "ascent-override"},
	{Name: "descent-override"},
	{Name: "line-gap-override"},
	{Name: "size-adjust"},
	{Name: "font-display"},
	{Name: "additive-symbols"},
	{Name: "fallback"},
	{Name: "negative"},
	{Name: "pad"},
	{Name: "prefix"},
	{Name: "range"},
	{Name: "suffix"},
	{Name: "symbols"},
	{Name: "system"},
	{Name: "inherits"},
	{Name: "initial-value"},
	{Name: "syntax"},
	{Name: "bleed"},
	{Name: "marks"},

	// Obsolete or never standardised
	{Name: "clip", Obsolete: true},
	{Name: "ime-mode", Obsolete: true},
	{Name: "box-align", Obsolete: true},
	{Name: "box-direction", Obsolete: true},
	{Name: "box-flex", Obsolete: true},
	{Name: "box-flex-group", Obsolete: true},
	{Name: "box-lines", Obsolete: true},
	{Name: "box-ordinal-group", Obsolete: true},
	{Name: "box-orient", Obsolete: true},
	{Name: "box-pack", Obsolete: true},
	{Name: "grid-column-gap", Obsolete: true},
	{Name: "grid-gap", Obsolete: true},
	{Name: "grid-row-gap", Obsolete: true},
	{Name: "scroll-snap-coordinate", Obsolete: true},
	{Name: "scroll-snap-destination", Obsolete: true},
	{Name: "scroll-snap-points-x", Obsolete: true},
	{Name: "scroll-snap-points-y", Obsolete: true},
	{Name: "text-combine-horizontal", Obsolete: true},
	{Name: "kerning", Obsolete: true},
	{Name: "glyph-orientation-horizontal", Obsolete: true},
	{Name: "glyph-orientation-vertical", Obsolete: true},
	{Name: "font-smooth", Obsolete: true},

	// Drafts
	{Name: "anchor-name", Experimental: true},
	{Name: "position-anchor", Experimental: true},
	{Name: "position-area", Experimental: true},
	{Name: "position-try", Experimental: true},
	{Name: "position-try-fallbacks", Experimental: true},
	{Name: "position-try-order", Experimental: true},
	{Name: "position-visibility", Experimental: true},
	{Name: "field-sizing", Experimental: true},
	{Name: "interpolate-size", Experimental: true},
	{Name: "text-box", Experimental: true},
	{Name: "text-box-edge", Experimental: true},
	{Name: "text-box-trim", Experimental: true},
	{Name: "text-spacing-trim", Experimental: true},
	{Name: "reading-flow", Experimental: true},
	{Name: "view-transition-name", Experimental: true},
	{Name: "view-transition-class", Experimental: true},
	{Name: "timeline-scope", Experimental: true},
	{Name: "animation-timeline", Experimental: true},
	{Name: "animation-range", Experimental: true},
	{Name: "animation-range-start", Experimental: true},
	{Name: "animation-range-end", Experimental: true},
	{Name: "scroll-timeline", Experimental: true},
	{Name: "scroll-timeline-axis", Experimental: true},
	{Name: "scroll-timeline-name", Experimental: true},
	{Name: "view-timeline", Experimental: true},
	{Name: "view-timeline-axis", Experimental: true},
	{Name: "view-timeline-inset", Experimental: true},
	{Name: "view-timeline-name", Experimental: true},
	{Name: "initial-letter", Experimental: true},
	{Name: "zoom", Experimental: true},
}
