// Package palette loads reference colour tables and exposes them as read-only palettes.
package palette

import (
	"fmt"

	"github.com/jmylchreest/colourname/internal/colour"
)

// Palette is an ordered, read-only collection of named colours.
// Order follows the source and is used to break distance ties.
type Palette struct {
	name    string
	entries []colour.Info
}

// New creates a Palette from already-built entries. The slice is copied.
func New(name string, entries []colour.Info) *Palette {
	copied := make([]colour.Info, len(entries))
	copy(copied, entries)
	return &Palette{
		name:    name,
		entries: copied,
	}
}

// Name returns the label of the source the palette was loaded from.
func (p *Palette) Name() string {
	return p.name
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (colour.Info, error) {
	if index < 0 || index >= len(p.entries) {
		return colour.Info{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.entries))
	}
	return p.entries[index], nil
}

// Entries returns a copy of the palette's colours in source order.
func (p *Palette) Entries() []colour.Info {
	entries := make([]colour.Info, len(p.entries))
	copy(entries, p.entries)
	return entries
}

// All returns an iterator over all colours in source order.
func (p *Palette) All() func(func(int, colour.Info) bool) {
	return func(yield func(int, colour.Info) bool) {
		for i, c := range p.entries {
			if !yield(i, c) {
				return
			}
		}
	}
}
