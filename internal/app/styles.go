package app

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStylesCmd returns a new cobra command that lists the supported file
// types and their comment delimiters, including any styles added by the
// config file.
func NewStylesCmd(mgr Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List supported file types and their comment delimiters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			known := mgr.Styles().Known()

			keys := make([]string, 0, len(known))
			for k := range known {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tSTART\tMIDDLE\tEND")
			for _, k := range keys {
				c := known[k]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k, c.Start, c.Middle, c.End)
			}
			return w.Flush()
		},
	}

	return cmd
}
