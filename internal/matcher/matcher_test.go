package matcher

import (
	"strings"
	"sync"
	"testing"

	"github.com/jmylchreest/colourname/internal/colour"
	"github.com/jmylchreest/colourname/internal/palette"
)

func mustOpen(t *testing.T, set string) *Matcher {
	t.Helper()
	p, err := palette.Open(set)
	if err != nil {
		t.Fatalf("palette.Open(%q) unexpected error: %v", set, err)
	}
	return New(p)
}

func mustLoad(t *testing.T, source string) *Matcher {
	t.Helper()
	p, err := palette.Load("test", strings.NewReader(source))
	if err != nil {
		t.Fatalf("palette.Load() unexpected error: %v", err)
	}
	return New(p)
}

func TestMatchBuiltinSets(t *testing.T) {
	tests := []struct {
		set   string
		query string
		want  Match
	}{
		{"css3", "aabbcc", Match{"#B0C4DE", "lightsteelblue", false, "#AABBCC"}},
		{"css3", "#AABBCC", Match{"#B0C4DE", "lightsteelblue", false, "#AABBCC"}},
		{"css3", "#abc", Match{"#B0C4DE", "lightsteelblue", false, "#AABBCC"}},
		{"css3", "ff0080", Match{"#FF1493", "deeppink", false, "#FF0080"}},
		{"css3", "123456", Match{"#191970", "midnightblue", false, "#123456"}},
		{"css3", "#fa8072", Match{"#FA8072", "salmon", true, "#FA8072"}},
		{"resene", "aabbcc", Match{"#ADBED1", "Casper", false, "#AABBCC"}},
		{"resene", "ff0080", Match{"#FF007F", "Rose", false, "#FF0080"}},
		{"resene", "123456", Match{"#13264D", "Blue Zodiac", false, "#123456"}},
		{"html4", "aabbcc", Match{"#C0C0C0", "silver", false, "#AABBCC"}},
		{"html4", "ff0080", Match{"#FF00FF", "fuchsia", false, "#FF0080"}},
		{"html4", "123456", Match{"#000080", "navy", false, "#123456"}},
		{"html4", "7f7f7f", Match{"#808080", "gray", false, "#7F7F7F"}},
	}

	for _, tt := range tests {
		t.Run(tt.set+"/"+tt.query, func(t *testing.T) {
			m := mustOpen(t, tt.set)
			if got := m.Match(tt.query); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchEveryPaletteColourIsExact(t *testing.T) {
	for _, set := range palette.SetNames() {
		t.Run(set, func(t *testing.T) {
			m := mustOpen(t, set)
			// Duplicate hex values resolve to their first entry.
			first := make(map[string]string)
			for _, c := range m.Palette().All() {
				if _, seen := first[c.Hex]; !seen {
					first[c.Hex] = c.Name
				}
			}

			for hex, name := range first {
				for _, query := range []string{hex, strings.ToLower(hex), strings.TrimPrefix(hex, "#")} {
					got := m.Match(query)
					if !got.Exact || got.Hex != hex || got.Name != name || got.Original != hex {
						t.Errorf("Match(%q) = %v, want exact %s %s", query, got, hex, name)
					}
				}
			}
		})
	}
}

func TestMatchInvalid(t *testing.T) {
	m := mustOpen(t, "css3")

	tests := []struct {
		query        string
		wantOriginal string
	}{
		{"", ""},
		{"a", "A"},
		{"ab", "AB"},
		{"abc", "ABC"},
		{"#aabbccd", "#AABBCCD"},
		{"aabbccdd", "AABBCCDD"},
		{"#aabbccdd", "#AABBCCDD"},
		{"abcd", "ABCD"},
		{"#abcd", "#ABCD"},
		{"aabbccd", "AABBCCD"},
		{"#ab", "#AB"},
		{"#abcde", "##ABCDE"},
		{"gggggg", "#GGGGGG"},
		{"#ggg", "#GGGGGG"},
		{"zz", "ZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := m.Match(tt.query)
			want := Invalid(tt.wantOriginal)
			if got != want {
				t.Errorf("Match(%q) = %v, want %v", tt.query, got, want)
			}
			if !got.IsInvalid() {
				t.Errorf("IsInvalid() = false for %v", got)
			}
		})
	}
}

func TestMatchShorthandEqualsExpanded(t *testing.T) {
	m := mustOpen(t, "resene")
	for _, short := range []string{"#abc", "#123", "#f0f", "#000", "#fff", "#9c3"} {
		expanded := "#" + string([]byte{short[1], short[1], short[2], short[2], short[3], short[3]})
		if a, b := m.Match(short), m.Match(expanded); a != b {
			t.Errorf("Match(%q) = %v, Match(%q) = %v", short, a, expanded, b)
		}
	}
}

func TestMatchDeterministic(t *testing.T) {
	m := mustOpen(t, "resene")
	queries := []string{"aabbcc", "#123456", "#f0f", "7f7f7f", "nope"}
	first := m.MatchAll(queries)
	for i := 0; i < 5; i++ {
		again := m.MatchAll(queries)
		for j := range queries {
			if again[j] != first[j] {
				t.Fatalf("run %d: Match(%q) = %v, first run %v", i, queries[j], again[j], first[j])
			}
		}
	}
}

func TestMatchTieKeepsFirstEntry(t *testing.T) {
	// #7F7F7F and #818181 are equally far from #808080.
	forward := mustLoad(t, "#7F7F7F,first\n#818181,second\n")
	if got := forward.Match("808080"); got.Name != "first" {
		t.Errorf("Match() = %v, want first entry", got)
	}

	reversed := mustLoad(t, "#818181,second\n#7F7F7F,first\n")
	if got := reversed.Match("808080"); got.Name != "second" {
		t.Errorf("Match() = %v, want first entry in load order", got)
	}
}

func TestMatchExactShortCircuitsOnFirstDuplicate(t *testing.T) {
	m := mustLoad(t, "#00FFFF,aqua\n#00FFFF,cyan\n")
	got := m.Match("00ffff")
	if got != (Match{"#00FFFF", "aqua", true, "#00FFFF"}) {
		t.Errorf("Match() = %v, want first duplicate", got)
	}
}

func TestMatchEmptyPalette(t *testing.T) {
	m := mustLoad(t, "hex,name\n")
	if got := m.Match("aabbcc"); got != Invalid("#AABBCC") {
		t.Errorf("Match() on empty palette = %v, want invalid", got)
	}
}

func TestMatchUnnamedClosestIsInvalid(t *testing.T) {
	m := mustLoad(t, "#AABBCD,\n#000000,black\n")
	if got := m.Match("aabbcc"); got != Invalid("#AABBCC") {
		t.Errorf("Match() = %v, want invalid for unnamed closest entry", got)
	}

	// An unnamed exact hit is still reported as found.
	if got := m.Match("#aabbcd"); !got.Exact || got.Name != "" {
		t.Errorf("Match() = %v, want exact unnamed entry", got)
	}
}

func TestMatchConcurrent(t *testing.T) {
	m := mustOpen(t, "css3")
	want := m.Match("aabbcc")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := m.Match("aabbcc"); got != want {
					t.Errorf("concurrent Match() = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDistance(t *testing.T) {
	a, _ := colour.NewInfo("#AABBCC", "")
	b, _ := colour.NewInfo("#B0C4DE", "")

	// RGB: 6² + 9² + 18² = 441. HSL: 3² + 41² + 12² = 1834.
	if got, want := Distance(a, b), 441+2*1834; got != want {
		t.Errorf("Distance() = %d, want %d", got, want)
	}
	if Distance(a, a) != 0 {
		t.Error("Distance to self should be zero")
	}
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance should not depend on argument order")
	}
}

func TestMatchString(t *testing.T) {
	m := Match{Hex: "#B0C4DE", Name: "lightsteelblue", Exact: false, Original: "#AABBCC"}
	want := "Match('#B0C4DE', 'lightsteelblue', False, '#AABBCC')"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	m.Exact = true
	if !strings.Contains(m.String(), "True") {
		t.Errorf("String() = %q, want True", m.String())
	}
}
