package colorfulversion

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// shortHexLength is the digit count of the shorthand #RGB form.
	shortHexLength = 3
	// fullHexLength is the digit count of the full #RRGGBB form.
	fullHexLength = 6
)

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// FromRGB builds a Color from three channel values.
func FromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses a hex color string into a Color.
//
// Accepted forms are #RRGGBB, #RGB, RRGGBB, and RGB, case-insensitive.
// In the 3-digit shorthand each digit is duplicated to form a channel,
// so "F00" decodes the same as "FF0000". Any other length, or any
// non-hex character, yields an *InvalidHexColorError.
func ParseHex(input string) (Color, error) {
	digits := strings.TrimPrefix(input, "#")

	// Expand the shorthand form to six digits before decoding.
	if len(digits) == shortHexLength {
		var expanded [fullHexLength]byte
		for i := 0; i < shortHexLength; i++ {
			expanded[2*i] = digits[i]
			expanded[2*i+1] = digits[i]
		}

		digits = string(expanded[:])
	}

	if len(digits) != fullHexLength {
		return Color{}, &InvalidHexColorError{Input: input}
	}

	var channels [3]uint8

	for i := range channels {
		value, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, &InvalidHexColorError{Input: input}
		}

		channels[i] = uint8(value)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex renders the color as an uppercase "#RRGGBB" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGB returns the three channel values.
func (c Color) RGB() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// String implements fmt.Stringer and is equivalent to Hex.
func (c Color) String() string {
	return c.Hex()
}
