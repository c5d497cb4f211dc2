// Package matcher finds the closest named colour in a palette for an arbitrary hex colour.
//
// Distance combines squared Euclidean distance in RGB space with twice the
// squared Euclidean distance in HSL space, both on a [0, 255] scale. The scan is
// linear and follows palette order, so results are deterministic.
package matcher

import (
	"fmt"

	"github.com/jmylchreest/colourname/internal/colour"
	"github.com/jmylchreest/colourname/internal/palette"
)

// HSLWeight is the multiplier applied to HSL distance relative to RGB distance.
const HSLWeight = 2

// Values reported for queries that are not a valid colour.
const (
	InvalidHex  = "#000000"
	InvalidName = "Invalid Color"
)

// Match is the result of naming a colour.
type Match struct {
	// Hex is the matched palette colour, or InvalidHex.
	Hex string `json:"hex_value"`
	// Name is the matched palette name, or InvalidName.
	Name string `json:"name"`
	// Exact is true when the query is itself a palette colour.
	Exact bool `json:"exact"`
	// Original is the query after normalisation.
	Original string `json:"original"`
}

// Invalid returns the Match reported for a query that cannot be named.
func Invalid(original string) Match {
	return Match{
		Hex:      InvalidHex,
		Name:     InvalidName,
		Exact:    false,
		Original: original,
	}
}

// IsInvalid reports whether m is the result for an unnameable query.
func (m Match) IsInvalid() bool {
	return m.Hex == InvalidHex && m.Name == InvalidName && !m.Exact
}

// String renders the match in a compact debugging form,
// e.g. Match('#B0C4DE', 'lightsteelblue', False, '#AABBCC').
func (m Match) String() string {
	exact := "False"
	if m.Exact {
		exact = "True"
	}
	return fmt.Sprintf("Match('%s', '%s', %s, '%s')", m.Hex, m.Name, exact, m.Original)
}

// Matcher names colours against a palette.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	palette *palette.Palette
	entries []colour.Info
}

// New creates a Matcher for the given palette.
func New(p *palette.Palette) *Matcher {
	return &Matcher{
		palette: p,
		entries: p.Entries(),
	}
}

// Palette returns the palette the matcher searches.
func (m *Matcher) Palette() *palette.Palette {
	return m.palette
}

// Match returns the palette colour closest to query.
// It never fails: malformed input yields the Invalid match.
func (m *Matcher) Match(query string) Match {
	normalised, ok := Normalise(query)
	if !ok {
		return Invalid(normalised)
	}

	target, err := colour.NewInfo(normalised, "")
	if err != nil {
		return Invalid(normalised)
	}

	best := -1
	var closest *colour.Info
	for i := range m.entries {
		entry := &m.entries[i]
		if entry.Hex == target.Hex {
			return Match{Hex: entry.Hex, Name: entry.Name, Exact: true, Original: normalised}
		}

		// Strict improvement only: the earliest entry wins a tie.
		if d := Distance(target, *entry); best == -1 || d < best {
			best = d
			closest = entry
		}
	}

	if closest == nil || closest.Name == "" {
		return Invalid(normalised)
	}
	return Match{Hex: closest.Hex, Name: closest.Name, Exact: false, Original: normalised}
}

// MatchAll names each query in order.
func (m *Matcher) MatchAll(queries []string) []Match {
	matches := make([]Match, len(queries))
	for i, q := range queries {
		matches[i] = m.Match(q)
	}
	return matches
}

// Distance returns the weighted distance between two colours used for ranking.
// It is zero only for identical colours and is not a metric.
func Distance(a, b colour.Info) int {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	rgb := dr*dr + dg*dg + db*db

	dh := a.H - b.H
	ds := a.S - b.S
	dl := a.L - b.L
	hsl := dh*dh + ds*ds + dl*dl

	return rgb + HSLWeight*hsl
}
