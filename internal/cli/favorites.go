package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/pkg/catalog"
)

func (a *app) newFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle whether a formula is a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				r := c.ToggleFavorite(cmd.Context(), id)
				if err := resultError(r, fmt.Sprintf("formula %q", id)); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if a.flags.jsonMode {
					return writeJSON(out, map[string]any{"id": id, "favorite": r.Value})
				}
				if r.Value {
					fmt.Fprintf(out, "Added %s to favorites\n", id)
				} else {
					fmt.Fprintf(out, "Removed %s from favorites\n", id)
				}
				return nil
			})
		},
	}
}

func (a *app) newFavoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite formulas, most recently added first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				r := c.ListFavorites(cmd.Context())
				if err := resultError(r, "favorites"); err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), r.Value)
				}
				writeFormulaTable(cmd.OutOrStdout(), r.Value, "No favorites yet.")
				return nil
			})
		},
	}
}
