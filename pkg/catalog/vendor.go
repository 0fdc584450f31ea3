package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vendor is a browser-engine or implementation specific name prefix.
type Vendor struct {
	Name   string
	Prefix string
}

// IsZero reports whether v is the absent vendor.
func (v Vendor) IsZero() bool {
	return v.Prefix == ""
}

func (v Vendor) String() string {
	return v.Prefix
}

// Known vendors.
var (
	Microsoft       = Vendor{Name: "microsoft", Prefix: "-ms-"}
	MicrosoftOffice = Vendor{Name: "microsoft-office", Prefix: "mso-"}
	Mozilla         = Vendor{Name: "mozilla", Prefix: "-moz-"}
	Opera           = Vendor{Name: "opera", Prefix: "-o-"}
	Xv              = Vendor{Name: "xv", Prefix: "-xv-"}
	Atsc            = Vendor{Name: "atsc", Prefix: "-atsc-"}
	Wap             = Vendor{Name: "wap", Prefix: "-wap-"}
	Konqueror       = Vendor{Name: "konqueror", Prefix: "-khtml-"}
	Apple           = Vendor{Name: "apple", Prefix: "-apple-"}
	Prince          = Vendor{Name: "prince", Prefix: "prince-"}
	AntennaHouse    = Vendor{Name: "antenna-house", Prefix: "-ah-"}
	HP              = Vendor{Name: "hp", Prefix: "-hp-"}
	RealObjects     = Vendor{Name: "real-objects", Prefix: "-ro-"}
	Rim             = Vendor{Name: "rim", Prefix: "-rim-"}
	TallComponents  = Vendor{Name: "tall-components", Prefix: "-tc-"}
	Webkit          = Vendor{Name: "webkit", Prefix: "-webkit-"}
	Epub            = Vendor{Name: "epub", Prefix: "-epub-"}
)

// vendors is the ordered candidate set. The first match wins.
var vendors = []Vendor{
	Microsoft,
	MicrosoftOffice,
	Mozilla,
	Opera,
	Xv,
	Atsc,
	Wap,
	Konqueror,
	Apple,
	Prince,
	AntennaHouse,
	HP,
	RealObjects,
	Rim,
	TallComponents,
	Webkit,
	Epub,
}

// Vendors returns the ordered list of known vendors.
func Vendors() []Vendor {
	out := make([]Vendor, len(vendors))
	copy(out, vendors)
	return out
}

// MatchVendor returns the first vendor whose prefix starts name,
// compared case-insensitively.
func MatchVendor(name string) (Vendor, bool) {
	lower := fold(name)
	for _, v := range vendors {
		if strings.HasPrefix(lower, v.Prefix) {
			return v, true
		}
	}
	return Vendor{}, false
}

// StripVendor splits a vendor-prefixed name. Names without a known prefix
// are returned unchanged with the zero Vendor.
func StripVendor(name string) (Vendor, string) {
	v, ok := MatchVendor(name)
	if !ok || len(name) < len(v.Prefix) || !strings.EqualFold(name[:len(v.Prefix)], v.Prefix) {
		return Vendor{}, name
	}
	return v, name[len(v.Prefix):]
}

// fold lower-cases a CSS name. A Caser is stateful, so one is created per call.
func fold(s string) string {
	return cases.Lower(language.English).String(s)
}
