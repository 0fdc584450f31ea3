package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchVendor(t *testing.T) {
	tests := []struct {
		input string
		want  Vendor
		ok    bool
	}{
		{"-webkit-box", Webkit, true},
		{"-WEBKIT-box", Webkit, true},
		{"-ms-filter", Microsoft, true},
		{"mso-style", MicrosoftOffice, true},
		{"prince-bookmark", Prince, true},
		{"-o-", Opera, true},
		{"webkit-box", Vendor{}, false},
		{"-unknown-box", Vendor{}, false},
		{"", Vendor{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := MatchVendor(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripVendor(t *testing.T) {
	v, name := StripVendor("-Moz-Appearance")
	assert.Equal(t, Mozilla, v)
	assert.Equal(t, "Appearance", name)

	v, name = StripVendor("display")
	assert.True(t, v.IsZero())
	assert.Equal(t, "display", name)
}

func TestVendorsIsACopy(t *testing.T) {
	list := Vendors()
	list[0] = Vendor{}
	assert.Equal(t, Microsoft, Vendors()[0])
}
