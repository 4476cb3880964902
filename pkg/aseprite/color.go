package aseprite

import (
	"fmt"

	"github.com/spriteops/asejson/pkg/errors"
)

// Color is an RGBA color. Its canonical textual form is "#rrggbbaa":
// a hash followed by 8 lowercase hex digits, 9 characters total.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// channel names in wire order, used in INVALID_COLOR_DIGIT messages.
var colorChannels = [4]string{"r", "g", "b", "a"}

// ParseColor parses a "#rrggbbaa" string into a Color. Hex digits of
// either case are accepted; see [Color.String] for the canonical form.
//
// The error carries the field path given in path so codec callers can
// report where in the document the bad color sits. Errors use code
// INVALID_COLOR_PREFIX when the string does not start with '#',
// INVALID_COLOR_LENGTH when it is not exactly 9 characters, and
// INVALID_COLOR_DIGIT naming the channel whose byte pair is not hex.
func ParseColor(path, s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, errors.New(errors.ErrCodeColorPrefix, path, "color %q must start with '#'", s)
	}
	if len(s) != 9 {
		return Color{}, errors.New(errors.ErrCodeColorLength, path, "color %q must be 9 characters, got %d", s, len(s))
	}

	var b [4]uint8
	for i := range b {
		hi, ok1 := hexNibble(s[1+2*i])
		lo, ok2 := hexNibble(s[2+2*i])
		if !ok1 || !ok2 {
			return Color{}, errors.New(errors.ErrCodeColorDigit, path,
				"color %q has a non-hex digit in channel %s", s, colorChannels[i])
		}
		b[i] = hi<<4 | lo
	}

	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// String returns the canonical lowercase "#rrggbbaa" form. Encoding is
// total and injective: ParseColor(path, c.String()) always round-trips
// to c, and the set of strings String produces is exactly the set
// ParseColor accepts up to hex-digit case.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// hexNibble decodes one hex digit, accepting both cases.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
