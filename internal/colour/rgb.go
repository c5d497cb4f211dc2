// Package colour provides the colour-space conversions used to compare named colours.
package colour

import (
	"fmt"
	"strconv"
)

// HexLength is the length of a fully expanded hex colour, including the leading '#'.
const HexLength = 7

// RGB represents a colour by its red, green and blue channels, each in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an upper-case hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// ParseRGB parses a hex colour of the exact form "#RRGGBB".
// No normalisation is performed: shorthand, missing '#' or surrounding
// whitespace are all rejected. Callers normalise before parsing.
func ParseRGB(hex string) (RGB, error) {
	if len(hex) != HexLength || hex[0] != '#' {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected #RRGGBB", hex)
	}

	r, err := parseChannel(hex[1:3])
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	g, err := parseChannel(hex[3:5])
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	b, err := parseChannel(hex[5:7])
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}

	return RGB{R: r, G: g, B: b}, nil
}

// parseChannel converts a two-character hex string to a channel value.
func parseChannel(s string) (int, error) {
	// strconv accepts a sign and "0x" prefixes; neither is valid here.
	if !isHexDigit(s[0]) || !isHexDigit(s[1]) {
		return 0, fmt.Errorf("non-hex digit in %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// IsHex reports whether s has the exact form "#RRGGBB".
func IsHex(s string) bool {
	if len(s) != HexLength || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
