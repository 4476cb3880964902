package aseprite

import "github.com/spriteops/asejson/pkg/errors"

// Direction is an animation tag's playback mode.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
	Pingpong
)

var directionNames = map[Direction]string{
	Forward:  "forward",
	Reverse:  "reverse",
	Pingpong: "pingpong",
}

var directionValues = map[string]Direction{
	"forward":  Forward,
	"reverse":  Reverse,
	"pingpong": Pingpong,
}

// ParseDirection parses the lowercase wire form of a Direction. Unknown
// strings fail with UNKNOWN_ENUM_VARIANT at the given field path.
func ParseDirection(path, s string) (Direction, error) {
	d, ok := directionValues[s]
	if !ok {
		return Forward, errors.New(errors.ErrCodeUnknownEnum, path, "unknown direction %q", s)
	}
	return d, nil
}

// String returns the lowercase wire form.
func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return "forward"
}

// BlendMode is a layer's compositing mode. The zero value is
// BlendNormal, matching Aseprite's default.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHslHue
	BlendHslSaturation
	BlendHslColor
	BlendHslLuminosity
	BlendAddition
	BlendSubtract
	BlendDivide
)

// Wire names are the lowercase snake_case strings Aseprite emits.
var blendModeNames = map[BlendMode]string{
	BlendNormal:        "normal",
	BlendMultiply:      "multiply",
	BlendScreen:        "screen",
	BlendOverlay:       "overlay",
	BlendDarken:        "darken",
	BlendLighten:       "lighten",
	BlendColorDodge:    "color_dodge",
	BlendColorBurn:     "color_burn",
	BlendHardLight:     "hard_light",
	BlendSoftLight:     "soft_light",
	BlendDifference:    "difference",
	BlendExclusion:     "exclusion",
	BlendHslHue:        "hsl_hue",
	BlendHslSaturation: "hsl_saturation",
	BlendHslColor:      "hsl_color",
	BlendHslLuminosity: "hsl_luminosity",
	BlendAddition:      "addition",
	BlendSubtract:      "subtract",
	BlendDivide:        "divide",
}

var blendModeValues = func() map[string]BlendMode {
	m := make(map[string]BlendMode, len(blendModeNames))
	for mode, name := range blendModeNames {
		m[name] = mode
	}
	return m
}()

// ParseBlendMode parses the lowercase snake_case wire form of a
// BlendMode. Unknown strings fail with UNKNOWN_ENUM_VARIANT at the given
// field path.
func ParseBlendMode(path, s string) (BlendMode, error) {
	m, ok := blendModeValues[s]
	if !ok {
		return BlendNormal, errors.New(errors.ErrCodeUnknownEnum, path, "unknown blend mode %q", s)
	}
	return m, nil
}

// String returns the lowercase snake_case wire form.
func (m BlendMode) String() string {
	if s, ok := blendModeNames[m]; ok {
		return s
	}
	return "normal"
}
