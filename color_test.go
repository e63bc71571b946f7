package colorfulversion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseHex checks decoding of the full, shorthand, and bare forms.
func TestParseHex(t *testing.T) {
	t.Parallel()

	cases := map[string]Color{
		"#FFFFFF": {R: 255, G: 255, B: 255},
		"#000000": {},
		"#FF0000": {R: 255},
		"FFFFFF":  {R: 255, G: 255, B: 255},
		"#AA00FF": {R: 170, B: 255},
		"#aa00ff": {R: 170, B: 255},
		"#AbCdEf": {R: 0xAB, G: 0xCD, B: 0xEF},
		"#FFF":    {R: 255, G: 255, B: 255},
		"#F00":    {R: 255},
		"F00":     {R: 255},
		"0F0":     {G: 255},
	}
	for input, want := range cases {
		got, err := ParseHex(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
}

// TestParseHexShorthandEquivalence verifies that each shorthand digit is
// duplicated, so #RGB always decodes the same as #RRGGBB.
func TestParseHexShorthandEquivalence(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"#F00": "#FF0000",
		"#0F0": "#00FF00",
		"#00F": "#0000FF",
		"#ABC": "#AABBCC",
		"#fff": "#ffffff",
	}
	for short, full := range cases {
		fromShort, err := ParseHex(short)
		require.NoError(t, err, short)

		fromFull, err := ParseHex(full)
		require.NoError(t, err, full)

		require.Equal(t, fromFull, fromShort, short)
	}
}

// TestParseHexRejectsMalformed covers wrong lengths and non-hex
// characters, and checks the error carries the original input.
func TestParseHexRejectsMalformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"#",
		"#1",
		"#12",
		"#1234",
		"#12345",
		"#1234567",
		"#GGHHII",
		"#GGG",
		"INVALID",
		"####",
		"#FF 000",
		"#ФФФФФФ",
	}
	for _, input := range inputs {
		_, err := ParseHex(input)
		require.Error(t, err, input)

		var hexErr *InvalidHexColorError
		require.ErrorAs(t, err, &hexErr, input)
		require.Equal(t, input, hexErr.Input, input)
		require.Contains(t, err.Error(), "#RRGGBB")
	}
}

// TestColorHexRoundtrip ensures Hex renders uppercase #RRGGBB and parses
// back to the same value.
func TestColorHexRoundtrip(t *testing.T) {
	t.Parallel()

	c := FromRGB(170, 0, 255)
	require.Equal(t, "#AA00FF", c.Hex())
	require.Equal(t, c.Hex(), c.String())

	parsed, err := ParseHex(c.Hex())
	require.NoError(t, err)
	require.Equal(t, c, parsed)

	r, g, b := parsed.RGB()
	require.Equal(t, uint8(170), r)
	require.Equal(t, uint8(0), g)
	require.Equal(t, uint8(255), b)
}
