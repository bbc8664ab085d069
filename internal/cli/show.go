package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/pkg/catalog"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Display a formula with tips and worked examples",
		Long:  "Display a formula with full details. Showing a formula adds it to the recent list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				r := c.GetByID(cmd.Context(), id)
				if err := resultError(r, fmt.Sprintf("formula %q", id)); err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), r.Value)
				}
				printFormula(cmd.OutOrStdout(), r.Value)
				return nil
			})
		},
	}
}

func printFormula(w io.Writer, f types.Formula) {
	fmt.Fprintf(w, "%s (%s)\n", f.Name, f.ID)
	fmt.Fprintf(w, "  %s\n", f.Expression)
	if f.LaTeX != "" {
		fmt.Fprintf(w, "  LaTeX: %s\n", f.LaTeX)
	}
	fmt.Fprintln(w)

	category := f.Category
	if f.Subcategory != "" {
		category += " / " + f.Subcategory
	}
	fmt.Fprintf(w, "Category:    %s\n", category)
	fmt.Fprintf(w, "Difficulty:  %s\n", f.Difficulty)
	fmt.Fprintf(w, "Favorite:    %s\n", yesNo(f.IsFavorite))
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.Description)

	if len(f.Tips) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Tips:")
		for _, tip := range f.Tips {
			fmt.Fprintf(w, "  - %s\n", tip)
		}
	}
	if len(f.Examples) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Examples:")
		for i, ex := range f.Examples {
			fmt.Fprintf(w, "  %d. %s\n", i+1, ex.Problem)
			fmt.Fprintf(w, "     Solution: %s\n", ex.Solution)
			if ex.Explanation != "" {
				fmt.Fprintf(w, "     %s\n", ex.Explanation)
			}
		}
	}
	if len(f.Concepts) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Concepts: %s\n", strings.Join(f.Concepts, "; "))
	}
	if len(f.Tags) > 0 {
		fmt.Fprintf(w, "Tags:     %s\n", strings.Join(f.Tags, ", "))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
