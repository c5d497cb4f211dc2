package colour

import (
	"fmt"
	"strings"
)

// Info is a named reference colour with its RGB and HSL forms precomputed.
// Values are immutable once built by NewInfo; they are passed and stored by value.
type Info struct {
	Hex  string `json:"hex_value"`
	Name string `json:"name"`
	RGB
	HSL
}

// NewInfo builds an Info from a "#RRGGBB" hex value and a name.
// The hex value is upper-cased so exact comparisons are case-insensitive.
func NewInfo(hex, name string) (Info, error) {
	hex = strings.ToUpper(hex)
	rgb, err := ParseRGB(hex)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Hex:  hex,
		Name: name,
		RGB:  rgb,
		HSL:  ToHSL(rgb),
	}, nil
}

// String returns a human-readable representation of the colour.
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", i.Hex, i.Name, i.RGB.String(), i.HSL.String())
}
