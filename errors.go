package colorfulversion

import "fmt"

// InvalidHexColorError reports a hex color string that could not be
// parsed: wrong length after stripping the optional leading '#', or a
// character outside [0-9a-fA-F].
type InvalidHexColorError struct {
	// Input is the original string passed to ParseHex, including the
	// leading '#' if one was present.
	Input string
}

// Error describes the malformed input and the accepted formats.
func (e *InvalidHexColorError) Error() string {
	return fmt.Sprintf("invalid hex color %q: expected #RRGGBB or #RGB", e.Input)
}
