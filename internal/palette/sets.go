package palette

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
)

//go:embed data/*.csv
var builtinFS embed.FS

// DefaultSet is the built-in set used when none is selected.
const DefaultSet = "css3"

// setExt is the file extension of palette sources, built-in and override alike.
const setExt = ".csv"

// ErrUnknownSet is returned when a set name does not match a built-in set.
var ErrUnknownSet = errors.New("unknown colour set")

// SetInfo describes a built-in colour set.
type SetInfo struct {
	Name        string
	Description string
}

// builtinSets lists the shipped colour sets in display order.
var builtinSets = []SetInfo{
	{Name: "css3", Description: "CSS3 / SVG named colours (superset of html4)"},
	{Name: "html4", Description: "The 16 HTML 4 colour keywords"},
	{Name: "resene", Description: "Resene paint colour names"},
}

// Sets returns the built-in colour sets in display order.
func Sets() []SetInfo {
	return slices.Clone(builtinSets)
}

// SetNames returns the names of the built-in colour sets.
func SetNames() []string {
	names := make([]string, len(builtinSets))
	for i, s := range builtinSets {
		names[i] = s.Name
	}
	return names
}

// IsValidSet checks if the given name is a built-in colour set.
func IsValidSet(name string) bool {
	return slices.Contains(SetNames(), name)
}

// Open loads a built-in set from the embedded data, ignoring any override.
func Open(name string) (*Palette, error) {
	return NewStore().Open(name)
}

// Store resolves built-in set names to palettes.
// It checks for an override file in its directory ({dir}/{name}.csv or .csv.xz)
// and falls back to the embedded set if none exists.
type Store struct {
	overrideDir string
	logger      hclog.Logger
}

// NewStore creates a Store with no override directory and a silent logger.
func NewStore() *Store {
	return &Store{
		logger: hclog.NewNullLogger(),
	}
}

// DefaultOverrideDir returns the directory user overrides are read from:
// $XDG_CONFIG_HOME/colourname/palettes, or ~/.config/colourname/palettes.
// Returns "" when neither can be determined.
func DefaultOverrideDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "colourname", "palettes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "colourname", "palettes")
}

// WithOverrideDir sets the directory checked for set overrides.
// An empty directory disables overrides.
func (s *Store) WithOverrideDir(dir string) *Store {
	s.overrideDir = dir
	return s
}

// WithLogger sets the logger used to report which source a set was loaded from.
func (s *Store) WithLogger(logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s.logger = logger
	return s
}

// OverrideDir returns the directory checked for set overrides.
func (s *Store) OverrideDir() string {
	return s.overrideDir
}

// Open loads the named set, preferring an override file when one exists.
func (s *Store) Open(name string) (*Palette, error) {
	if !IsValidSet(name) {
		return nil, fmt.Errorf("%w: %q (valid sets: %s)", ErrUnknownSet, name, strings.Join(SetNames(), ", "))
	}

	if path, ok := s.overridePath(name); ok {
		s.logger.Debug("loading colour set override", "set", name, "path", path)
		p, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		p.name = name
		s.logger.Debug("loaded colour set", "set", name, "entries", p.Len(), "source", "override")
		return p, nil
	}

	p, err := loadEmbedded(name)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded colour set", "set", name, "entries", p.Len(), "source", "embedded")
	return p, nil
}

// overridePath returns the first existing override file for a set.
func (s *Store) overridePath(name string) (string, bool) {
	if s.overrideDir == "" {
		return "", false
	}
	for _, candidate := range []string{name + setExt, name + setExt + ".xz"} {
		path := filepath.Join(s.overrideDir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// HasOverride reports whether an override file exists for the named set.
func (s *Store) HasOverride(name string) bool {
	_, ok := s.overridePath(name)
	return ok
}

// DumpSet writes the embedded source of a set to w.
// This is useful as a starting point for an override file.
func DumpSet(name string, w io.Writer) error {
	if !IsValidSet(name) {
		return fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	data, err := builtinFS.ReadFile(builtinPath(name))
	if err != nil {
		return fmt.Errorf("failed to read embedded set %q: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write set %q: %w", name, err)
	}
	return nil
}

func loadEmbedded(name string) (*Palette, error) {
	f, err := builtinFS.Open(builtinPath(name))
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	defer f.Close()
	return Load(name, f)
}

func builtinPath(name string) string {
	// embed.FS paths always use forward slashes.
	return "data/" + name + setExt
}
