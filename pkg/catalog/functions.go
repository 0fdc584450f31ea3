package catalog

// functions lists the standard CSS functions followed by the functions
// built into the Less compiler.
var functions = []Descriptor{
	{Name: "abs"},
	{Name: "acos"},
	{Name: "annotation"},
	{Name: "asin"},
	{Name: "atan"},
	{Name: "atan2"},
	{Name: "attr"},
	{Name: "blur"},
	{Name: "brightness"},
	{Name: "calc"},
	{Name: "calc-size"},
	{Name: "character-variant"},
	{Name: "circle"},
	{Name: "clamp"},
	{Name: "color"},
	{Name: "color-mix"},
	{Name: "conic-gradient"},
	{Name: "contrast"},
	{Name: "cos"},
	{Name: "counter"},
	{Name: "counters"},
	{Name: "cross-fade"},
	{Name: "cubic-bezier"},
	{Name: "drop-shadow"},
	{Name: "element"},
	{Name: "ellipse"},
	{Name: "env"},
	{Name: "exp"},
	{Name: "fit-content"},
	{Name: "format"},
	{Name: "grayscale"},
	{Name: "hsl"},
	{Name: "hsla"},
	{Name: "hue-rotate"},
	{Name: "hwb"},
	{Name: "hypot"},
	{Name: "image"},
	{Name: "image-set"},
	{Name: "inset"},
	{Name: "invert"},
	{Name: "lab"},
	{Name: "lch"},
	{Name: "light-dark"},
	{Name: "linear"},
	{Name: "linear-gradient"},
	{Name: "local"},
	{Name: "log"},
	{Name: "matrix"},
	{Name: "matrix3d"},
	{Name: "max"},
	{Name: "min"},
	{Name: "minmax"},
	{Name: "mod"},
	{Name: "oklab"},
	{Name: "oklch"},
	{Name: "opacity"},
	{Name: "ornaments"},
	{Name: "paint"},
	{Name: "path"},
	{Name: "perspective"},
	{Name: "polygon"},
	{Name: "pow"},
	{Name: "radial-gradient"},
	{Name: "ray"},
	{Name: "rect"},
	{Name: "rem"},
	{Name: "repeat"},
	{Name: "repeating-conic-gradient"},
	{Name: "repeating-linear-gradient"},
	{Name: "repeating-radial-gradient"},
	{Name: "rgb"},
	{Name: "rgba"},
	{Name: "rotate"},
	{Name: "rotate3d"},
	{Name: "rotatex"},
	{Name: "rotatey"},
	{Name: "rotatez"},
	{Name: "round"},
	{Name: "saturate"},
	{Name: "scale"},
	{Name: "scale3d"},
	{Name: "scalex"},
	{Name: "scaley"},
	{Name: "scalez"},
	{Name: "selector"},
	{Name: "sepia"},
	{Name: "sign"},
	{Name: "sin"},
	{Name: "skew"},
	{Name: "skewx"},
	{Name: "skewy"},
	{Name: "sqrt"},
	{Name: "steps"},
	{Name: "styleset"},
	{Name: "stylistic"},
	{Name: "swash"},
	{Name: "symbols"},
	{Name: "tan"},
	{Name: "translate"},
	{Name: "translate3d"},
	{Name: "translatex"},
	{Name: "translatey"},
	{Name: "translatez"},
	{Name: "var"},
	{Name: "xywh"},
	{Name: "anchor"},
	{Name: "anchor-size"},

	// Less
	{Name: "if", LessOnly: true},
	{Name: "boolean", LessOnly: true},
	{Name: "escape", LessOnly: true},
	{Name: "e", LessOnly: true},
	{Name: "replace", LessOnly: true},
	{Name: "length", LessOnly: true},
	{Name: "extract", LessOnly: true},
	{Name: "range", LessOnly: true},
	{Name: "each", LessOnly: true},
	{Name: "ceil", LessOnly: true},
	{Name: "floor", LessOnly: true},
	{Name: "percentage", LessOnly: true},
	{Name: "pi", LessOnly: true},
	{Name: "isnumber", LessOnly: true},
	{Name: "isstring", LessOnly: true},
	{Name: "iscolor", LessOnly: true},
	{Name: "iskeyword", LessOnly: true},
	{Name: "isurl", LessOnly: true},
	{Name: "ispixel", LessOnly: true},
	{Name: "isem", LessOnly: true},
	{Name: "ispercentage", LessOnly: true},
	{Name: "isunit", LessOnly: true},
	{Name: "isruleset", LessOnly: true},
	{Name: "isdefined", LessOnly: true},
	{Name: "image-size", LessOnly: true},
	{Name: "image-width", LessOnly: true},
	{Name: "image-height", LessOnly: true},
	{Name: "convert", LessOnly: true},
	{Name: "data-uri", LessOnly: true},
	{Name: "default", LessOnly: true},
	{Name: "unit", LessOnly: true},
	{Name: "get-unit", LessOnly: true},
	{Name: "svg-gradient", LessOnly: true},
	{Name: "argb", LessOnly: true},
	{Name: "hsv", LessOnly: true},
	{Name: "hsva", LessOnly: true},
	{Name: "hue", LessOnly: true},
	{Name: "saturation", LessOnly: true},
	{Name: "lightness", LessOnly: true},
	{Name: "hsvhue", LessOnly: true},
	{Name: "hsvsaturation", LessOnly: true},
	{Name: "hsvvalue", LessOnly: true},
	{Name: "red", LessOnly: true},
	{Name: "green", LessOnly: true},
	{Name: "blue", LessOnly: true},
	{Name: "alpha", LessOnly: true},
	{Name: "luma", LessOnly: true},
	{Name: "luminance", LessOnly: true},
	{Name: "desaturate", LessOnly: true},
	{Name: "lighten", LessOnly: true},
	{Name: "darken", LessOnly: true},
	{Name: "fadein", LessOnly: true},
	{Name: "fadeout", LessOnly: true},
	{Name: "fade", LessOnly: true},
	{Name: "spin", LessOnly: true},
	{Name: "mix", LessOnly: true},
	{Name: "tint", LessOnly: true},
	{Name: "shade", LessOnly: true},
	{Name: "greyscale", LessOnly: true},
	{Name: "multiply", LessOnly: true},
	{Name: "screen", LessOnly: true},
	{Name: "overlay", LessOnly: true},
	{Name: "softlight", LessOnly: true},
	{Name: "hardlight", LessOnly: true},
	{Name: "difference", LessOnly: true},
	{Name: "exclusion", LessOnly: true},
	{Name: "average", LessOnly: true},
	{Name: "negation", LessOnly: true},
}
