package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/pkg/catalog"
)

func (a *app) newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently viewed formulas, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				r := c.ListRecent(cmd.Context())
				if err := resultError(r, "recent formulas"); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if a.flags.jsonMode {
					return writeJSON(out, r.Value)
				}
				if len(r.Value) == 0 {
					fmt.Fprintln(out, "Nothing viewed yet.")
					return nil
				}
				now := a.now()
				rows := make([][]string, len(r.Value))
				for i, rf := range r.Value {
					rows[i] = []string{rf.Formula.ID, rf.Formula.Name, humanize.RelTime(rf.ViewedAt, now, "ago", "from now")}
				}
				writeTable(out, []string{"ID", "NAME", "VIEWED"}, rows)
				return nil
			})
		},
	}
}
