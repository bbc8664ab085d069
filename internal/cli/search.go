package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/pkg/catalog"
)

func (a *app) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search formulas by name, description and tags",
		Long: `Search ranks formulas by where the query appears: the name scores 10,
the description, a concept or an example explanation scores 5, and a tag
scores 3. At most 10 results are shown.

Example:
  formulary search quadratic
  formulary search "law of" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				r := c.Search(cmd.Context(), query)
				if err := resultError(r, "search results"); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if a.flags.jsonMode {
					return writeJSON(out, r.Value)
				}
				if len(r.Value) == 0 {
					fmt.Fprintf(out, "No formulas match %q.\n", query)
					return nil
				}
				rows := make([][]string, len(r.Value))
				for i, h := range r.Value {
					rows[i] = []string{strconv.Itoa(h.Score), string(h.Match), h.Formula.ID, h.Formula.Name}
				}
				writeTable(out, []string{"SCORE", "MATCH", "ID", "NAME"}, rows)
				return nil
			})
		},
	}
}
