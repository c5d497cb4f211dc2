// Package cli provides the command-line interface for colourname.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/colourname/internal/colour"
	"github.com/jmylchreest/colourname/internal/config"
	"github.com/jmylchreest/colourname/internal/matcher"
	"github.com/jmylchreest/colourname/internal/output"
	"github.com/jmylchreest/colourname/internal/palette"
	"github.com/jmylchreest/colourname/internal/version"
	"github.com/spf13/cobra"
)

// rootOptions holds the flag values for one command tree.
type rootOptions struct {
	set        string
	colors     string
	fields     []string
	format     string
	preview    bool
	paletteDir string
	verbose    bool

	logger hclog.Logger
}

// NewRootCmd builds the colourname command tree. Each call returns an
// independent tree with its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "colourname [flags] <hex>...",
		Short: "Name colours by their closest match in a colour list",
		Long: `colourname finds the closest named colour for each hex value given.

Colours may be written as RRGGBB, #RRGGBB or #RGB in any case. Names come from
one of the built-in colour sets or from a custom palette file of
"#RRGGBB,Name" lines. Values that are not colours are reported as
"Invalid Color" rather than failing the command.

Defaults can be set with COLOURNAME_SET, COLOURNAME_FORMAT, COLOURNAME_OUTPUT
and COLOURNAME_PALETTE_DIR, either in the environment or in a .env file in the
working directory.

Examples:
  # Name a colour using CSS3 colour names
  colourname aabbcc

  # Use Resene paint names and show every field
  colourname -s resene -o hex_value,name,exact,original '#abc'

  # Name several colours from a custom palette as a table
  colourname -c brand.csv --format table ff0080 123456`,
		Version:           version.Short(),
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: opts.prepare,
		RunE:              opts.run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.set, config.FlagSet, "s", palette.DefaultSet, "built-in colour set (css3, html4, resene)")
	flags.StringVarP(&opts.colors, config.FlagColors, "c", "", "custom palette file of \"#RRGGBB,Name\" lines (.xz accepted)")
	flags.StringSliceVarP(&opts.fields, config.FlagOutput, "o", fieldNames(output.DefaultFields()), "fields to output (hex_value, name, exact, original)")
	flags.StringVar(&opts.format, config.FlagFormat, string(output.FormatJSON), "output format (json, raw, table)")
	flags.BoolVar(&opts.preview, "preview", false, "show a swatch of the matched colour when writing to a terminal")
	rootCmd.MarkFlagsMutuallyExclusive(config.FlagSet, config.FlagColors)

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&opts.paletteDir, config.FlagPaletteDir, "", "directory of colour set overrides (default $XDG_CONFIG_HOME/colourname/palettes)")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newSetsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// prepare applies environment defaults and configures logging for any command.
func (o *rootOptions) prepare(cmd *cobra.Command, _ []string) error {
	o.logger = newLogger(cmd.ErrOrStderr(), o.verbose)

	env, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}
	if err := env.Apply(cmd.Flags()); err != nil {
		return err
	}
	o.logger.Debug("resolved configuration", "set", o.set, "colors", o.colors, "format", o.format, "output", o.fields)
	return nil
}

// run names each target colour and writes the results.
func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	fields, err := output.ParseFields(o.fields)
	if err != nil {
		return err
	}

	formatter, err := output.New(output.Config{
		Format:  output.Format(o.format),
		Fields:  fields,
		Preview: o.preview && supportsPreview(cmd.OutOrStdout()),
	})
	if err != nil {
		return err
	}

	p, err := o.loadPalette()
	if err != nil {
		return err
	}

	m := matcher.New(p)
	matches := m.MatchAll(args)
	for i, match := range matches {
		o.logger.Debug("matched colour", "query", args[i], "hex", match.Hex, "name", match.Name, "exact", match.Exact)
	}

	return formatter.Write(cmd.OutOrStdout(), matches)
}

// loadPalette loads the custom palette file when given, otherwise the selected set.
func (o *rootOptions) loadPalette() (*palette.Palette, error) {
	if o.colors != "" {
		o.logger.Debug("loading custom palette", "path", o.colors)
		p, err := palette.LoadFile(o.colors)
		if err != nil {
			return nil, fmt.Errorf("failed to load palette: %w", err)
		}
		o.logger.Debug("loaded custom palette", "entries", p.Len())
		return p, nil
	}

	p, err := o.store().Open(o.set)
	if err != nil {
		return nil, fmt.Errorf("failed to load colour set: %w", err)
	}
	return p, nil
}

// store returns a palette store using the configured override directory.
func (o *rootOptions) store() *palette.Store {
	dir := o.paletteDir
	if dir == "" {
		dir = palette.DefaultOverrideDir()
	}
	return palette.NewStore().
		WithOverrideDir(dir).
		WithLogger(o.logger.Named("palette"))
}

// newLogger returns a debug logger on w when verbose, otherwise a silent one.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "colourname",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colourname",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// supportsPreview reports whether w is a terminal that accepts ANSI colour.
func supportsPreview(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

func fieldNames(fields []output.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}
