package matcher

import (
	"strings"

	"github.com/jmylchreest/colourname/internal/colour"
)

// Accepted query lengths, exclusive. "#RGB" is the shortest, "#RRGGBB" the longest.
const (
	minQueryLen = 3
	maxQueryLen = 8
)

// Normalise converts a user-supplied colour into "#RRGGBB" upper-case form.
// It accepts "RRGGBB", "#RRGGBB" and "#RGB" in any case.
//
// The returned string is the input as far as normalisation got: it is the
// upper-cased input when the length is out of range, and the prefixed or
// expanded form otherwise. ok is false when the result is not a valid colour.
func Normalise(query string) (normalised string, ok bool) {
	q := strings.ToUpper(query)

	if len(q) <= minQueryLen || len(q) >= maxQueryLen {
		return q, false
	}

	switch {
	case len(q)%3 == 0:
		q = "#" + q
	case len(q) == 4 && q[0] == '#':
		q = string([]byte{'#', q[1], q[1], q[2], q[2], q[3], q[3]})
	}

	return q, colour.IsHex(q)
}
