package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/pkg/catalog"
)

func (a *app) newHistoryCmd() *cobra.Command {
	var clearHistory bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent search queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				out := cmd.OutOrStdout()
				if clearHistory {
					if err := resultError(c.ClearSearchHistory(cmd.Context()), "search history"); err != nil {
						return err
					}
					if a.flags.jsonMode {
						return writeJSON(out, map[string]bool{"cleared": true})
					}
					fmt.Fprintln(out, "Search history cleared.")
					return nil
				}

				r := c.SearchHistory(cmd.Context())
				if err := resultError(r, "search history"); err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(out, r.Value)
				}
				if len(r.Value) == 0 {
					fmt.Fprintln(out, "No searches yet.")
					return nil
				}
				now := a.now()
				rows := make([][]string, len(r.Value))
				for i, e := range r.Value {
					rows[i] = []string{e.Query, humanize.RelTime(e.Timestamp, now, "ago", "from now")}
				}
				writeTable(out, []string{"QUERY", "SEARCHED"}, rows)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&clearHistory, "clear", false, "delete the search history")
	return cmd
}
