package palette

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/colourname/internal/colour"
	"github.com/ulikunitz/xz"
)

// MaxSourceSize is the largest palette source, after decompression, that will be read.
const MaxSourceSize = 16 * 1024 * 1024

// entryMarker starts every colour line; all other lines are ignored.
const entryMarker = "#"

// ErrSourceTooLarge is returned when a palette source exceeds MaxSourceSize.
var ErrSourceTooLarge = errors.New("palette source size limit exceeded")

// LoadError describes why a palette source could not be loaded.
// Line is 1-based and zero when the failure is not tied to a line.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("palette %s: line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("palette %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads "#RRGGBB,Name" lines from r and builds a palette labelled name.
// Lines that do not start with '#' (headers, comments, blank lines) are skipped.
// Names may contain commas; only the first comma separates hex from name.
// Any malformed entry fails the whole load.
func Load(name string, r io.Reader) (*Palette, error) {
	scanner := bufio.NewScanner(&limitedReader{r: r, remaining: MaxSourceSize})
	scanner.Buffer(make([]byte, 0, 64*1024), MaxSourceSize)

	var entries []colour.Info
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if !strings.HasPrefix(line, entryMarker) {
			continue
		}

		info, err := parseLine(line)
		if err != nil {
			return nil, &LoadError{Source: name, Line: lineNo, Err: err}
		}
		entries = append(entries, info)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}

	return &Palette{name: name, entries: entries}, nil
}

// parseLine splits an entry line on its first comma and builds the colour.
func parseLine(line string) (colour.Info, error) {
	hex, name, found := strings.Cut(line, ",")
	if !found {
		return colour.Info{}, fmt.Errorf("missing ',' between hex value and name in %q", line)
	}

	hex = strings.TrimSpace(hex)
	if !colour.IsHex(hex) {
		return colour.Info{}, fmt.Errorf("invalid hex value %q: expected #RRGGBB", hex)
	}

	return colour.NewInfo(hex, strings.TrimSpace(name))
}

// LoadFile loads a palette from a file on disk.
// Files ending in ".xz" are decompressed first.
func LoadFile(path string) (*Palette, error) {
	if path == "" {
		return nil, &LoadError{Source: path, Err: errors.New("palette path cannot be empty")}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Source: path, Err: errors.New("path is a directory, not a file")}
	}

	data, err := os.ReadFile(path) // #nosec G304 - Palette path supplied by the user
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	return LoadBytes(path, data)
}

// LoadBytes loads a palette from an in-memory source.
// Data starting with the xz magic bytes, or named "*.xz", is decompressed first.
func LoadBytes(name string, data []byte) (*Palette, error) {
	if !isXz(name, data) {
		return Load(name, bytes.NewReader(data))
	}

	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Source: name, Err: fmt.Errorf("failed to create xz reader: %w", err)}
	}
	return Load(strings.TrimSuffix(name, ".xz"), xzr)
}

// xzMagic is the header every xz stream starts with.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

func isXz(name string, data []byte) bool {
	return strings.EqualFold(filepath.Ext(name), ".xz") || bytes.HasPrefix(data, xzMagic)
}

// limitedReader wraps an io.Reader and fails once more than remaining bytes are read.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

// Read implements io.Reader with size limits.
func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		// Allow a clean EOF exactly at the limit.
		var probe [1]byte
		if n, err := l.r.Read(probe[:]); n == 0 && err == io.EOF {
			return 0, io.EOF
		}
		return 0, ErrSourceTooLarge
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
