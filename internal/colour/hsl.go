package colour

import (
	"fmt"
	"math"
)

// ByteScale is the range every HSL component is rescaled into so that hue,
// saturation and lightness share a magnitude with the RGB channels.
const ByteScale = 255

// HSL represents a colour in HSL space with every component rescaled to [0, 255].
// Hue 0 and 255 are neighbours on the colour wheel; no wraparound is applied when
// comparing hues.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s, l)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d, %d)", hsl.H, hsl.S, hsl.L)
}

// ToHSL converts RGB to HSL with each component scaled to [0, 255].
// Scaled values are truncated toward zero, not rounded.
func ToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l := (minVal + maxVal) / 2

	// Saturation is left at zero for black and white.
	var s float64
	if l > 0 && l < 1 {
		// Explicit conversions prevent fused multiply-add on some architectures,
		// which would change the truncated result.
		if l < 0.5 {
			s = delta / float64(2*l)
		} else {
			s = delta / (2 - float64(2*l))
		}
	}

	// Hue. Contributions are summed per region, so a channel tie between the
	// maximum and another channel selects exactly one region.
	var h float64
	if delta > 0 {
		if maxVal == r && maxVal != g {
			h += (g - b) / delta
		}
		if maxVal == g && maxVal != b {
			h += 2 + (b-r)/delta
		}
		if maxVal == b && maxVal != r {
			h += 4 + (r-g)/delta
		}
		// Red-dominant colours leaning blue fall below zero; wrap by one full turn.
		if h < 0 {
			h += 6
		}
		h /= 6
	}

	return HSL{
		H: scale(h),
		S: scale(s),
		L: scale(l),
	}
}

// HexToHSL parses a "#RRGGBB" colour and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := ParseRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return ToHSL(rgb), nil
}

// scale maps a unit value onto [0, 255], truncating toward zero.
func scale(v float64) int {
	return int(v * ByteScale)
}
