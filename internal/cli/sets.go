package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/colourname/internal/output"
	"github.com/jmylchreest/colourname/internal/palette"
	"github.com/spf13/cobra"
)

// descriptionWidth is where set descriptions wrap in the listing.
const descriptionWidth = 48

func newSetsCmd(opts *rootOptions) *cobra.Command {
	var dump string

	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the built-in colour sets",
		Long: `List the built-in colour sets with their entry counts.

A set can be replaced by placing {set}.csv or {set}.csv.xz in the palette
directory. The source column shows whether the built-in data or an override
is in use. Use --dump to print a built-in set as a starting point.

Examples:
  # List sets
  colourname sets

  # Start an override for the resene set
  colourname sets --dump resene > ~/.config/colourname/palettes/resene.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dump != "" {
				return palette.DumpSet(dump, cmd.OutOrStdout())
			}
			return opts.listSets(cmd)
		},
	}

	cmd.Flags().StringVar(&dump, "dump", "", "write the built-in source of a set to stdout")

	return cmd
}

// listSets prints each built-in set as it would be resolved for matching.
func (o *rootOptions) listSets(cmd *cobra.Command) error {
	store := o.store()

	table := output.NewTable([]string{"set", "entries", "source", "description"})
	table.SetColumnMaxWidth(3, descriptionWidth)

	for _, set := range palette.Sets() {
		p, err := store.Open(set.Name)
		if err != nil {
			return fmt.Errorf("failed to load colour set: %w", err)
		}

		source := "builtin"
		if store.HasOverride(set.Name) {
			source = "override"
		}

		name := set.Name
		if name == palette.DefaultSet {
			name += " (default)"
		}
		table.AddRow([]string{name, strconv.Itoa(p.Len()), source, set.Description})
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return err
}
