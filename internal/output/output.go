// Package output renders colour matches for the command line.
package output

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jmylchreest/colourname/internal/colour"
	"github.com/jmylchreest/colourname/internal/matcher"
	"github.com/tidwall/sjson"
)

// Format represents an output format.
type Format string

const (
	// FormatJSON writes one JSON object per match containing the selected fields.
	FormatJSON Format = "json"

	// FormatRaw writes the debugging representation of each match with every field.
	FormatRaw Format = "raw"

	// FormatTable writes all matches as a single aligned table of the selected fields.
	FormatTable Format = "table"
)

// Field names a Match attribute that can be selected for output.
type Field string

const (
	FieldHex      Field = "hex_value"
	FieldName     Field = "name"
	FieldExact    Field = "exact"
	FieldOriginal Field = "original"
)

var (
	// ErrUnknownFormat is returned for a format that is not supported.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownField is returned for a field that is not a Match attribute.
	ErrUnknownField = errors.New("unknown output field")
)

// ValidFormats returns a list of supported formats.
func ValidFormats() []Format {
	return []Format{FormatJSON, FormatRaw, FormatTable}
}

// ValidFields returns every selectable field in Match order.
func ValidFields() []Field {
	return []Field{FieldHex, FieldName, FieldExact, FieldOriginal}
}

// DefaultFields returns the fields written when none are selected.
func DefaultFields() []Field {
	return []Field{FieldHex, FieldName}
}

// Config holds output settings. The zero value is not valid; start from DefaultConfig.
type Config struct {
	Format  Format
	Fields  []Field
	Preview bool
}

// DefaultConfig returns the default output configuration.
func DefaultConfig() Config {
	return Config{
		Format: FormatJSON,
		Fields: DefaultFields(),
	}
}

// Validate validates the output configuration.
func (c Config) Validate() error {
	if !slices.Contains(ValidFormats(), c.Format) {
		return fmt.Errorf("%w: %q (valid formats: %s)", ErrUnknownFormat, c.Format, joinFormats(ValidFormats()))
	}
	if len(c.Fields) == 0 {
		return fmt.Errorf("at least one output field is required (valid fields: %s)", joinFields(ValidFields()))
	}
	for _, f := range c.Fields {
		if !slices.Contains(ValidFields(), f) {
			return fmt.Errorf("%w: %q (valid fields: %s)", ErrUnknownField, f, joinFields(ValidFields()))
		}
	}
	return nil
}

// ParseFields converts field names to Fields, splitting comma-separated entries.
// Duplicates are dropped, keeping first occurrence order.
func ParseFields(names []string) ([]Field, error) {
	var fields []Field
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			f := Field(part)
			if !slices.Contains(ValidFields(), f) {
				return nil, fmt.Errorf("%w: %q (valid fields: %s)", ErrUnknownField, part, joinFields(ValidFields()))
			}
			if !slices.Contains(fields, f) {
				fields = append(fields, f)
			}
		}
	}
	return fields, nil
}

// Formatter writes matches according to a Config.
type Formatter struct {
	config Config
}

// New creates a Formatter after validating the configuration.
func New(config Config) (*Formatter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.Fields = slices.Clone(config.Fields)
	return &Formatter{config: config}, nil
}

// Config returns a copy of the formatter's configuration.
func (f *Formatter) Config() Config {
	c := f.config
	c.Fields = slices.Clone(c.Fields)
	return c
}

// Format renders a single match without a trailing newline.
func (f *Formatter) Format(m matcher.Match) (string, error) {
	var line string
	switch f.config.Format {
	case FormatJSON:
		data, err := f.json(m)
		if err != nil {
			return "", err
		}
		line = string(data)
	case FormatRaw:
		line = m.String()
	case FormatTable:
		t := f.table([]matcher.Match{m})
		return strings.TrimSuffix(t.Render(), "\n"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f.config.Format)
	}

	return f.withPreview(m, line), nil
}

// Write renders every match to w. JSON and raw formats write one line per match;
// the table format writes a single table.
func (f *Formatter) Write(w io.Writer, matches []matcher.Match) error {
	if f.config.Format == FormatTable {
		_, err := io.WriteString(w, f.table(matches).Render())
		return err
	}

	for _, m := range matches {
		line, err := f.Format(m)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// json builds an object holding the selected fields in selection order.
func (f *Formatter) json(m matcher.Match) ([]byte, error) {
	data := []byte("{}")
	for _, field := range f.config.Fields {
		var err error
		data, err = sjson.SetBytes(data, string(field), fieldValue(m, field))
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", field, err)
		}
	}
	return data, nil
}

// table builds a table with one column per selected field.
func (f *Formatter) table(matches []matcher.Match) *Table {
	headers := make([]string, 0, len(f.config.Fields)+1)
	if f.config.Preview {
		headers = append(headers, "")
	}
	for _, field := range f.config.Fields {
		headers = append(headers, string(field))
	}

	t := NewTable(headers)
	for _, m := range matches {
		row := make([]string, 0, len(headers))
		if f.config.Preview {
			row = append(row, swatch(m))
		}
		for _, field := range f.config.Fields {
			row = append(row, fieldString(m, field))
		}
		t.AddRow(row)
	}
	return t
}

func (f *Formatter) withPreview(m matcher.Match, line string) string {
	if !f.config.Preview {
		return line
	}
	return swatch(m) + " " + line
}

// swatch renders the matched colour as a terminal block.
func swatch(m matcher.Match) string {
	rgb, err := colour.ParseRGB(m.Hex)
	if err != nil {
		return ""
	}
	return colour.ColourPreview(rgb, 0)
}

func fieldValue(m matcher.Match, field Field) any {
	switch field {
	case FieldHex:
		return m.Hex
	case FieldName:
		return m.Name
	case FieldExact:
		return m.Exact
	case FieldOriginal:
		return m.Original
	default:
		return nil
	}
}

func fieldString(m matcher.Match, field Field) string {
	if field == FieldExact {
		return strconv.FormatBool(m.Exact)
	}
	if v, ok := fieldValue(m, field).(string); ok {
		return v
	}
	return ""
}

func joinFormats(formats []Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
