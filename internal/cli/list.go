package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/pkg/catalog"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

func (a *app) newListCmd() *cobra.Command {
	var filter struct {
		category    string
		subcategory string
		difficulty  string
	}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List formulas",
		Long: `List formulas ordered by name.

Example:
  formulary list
  formulary list --category algebra
  formulary list --category calculus --subcategory Derivatives
  formulary list --difficulty beginner --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := types.FormulaFilter{
				Category:    filter.category,
				Subcategory: filter.subcategory,
			}
			if filter.difficulty != "" {
				d, err := types.ParseDifficulty(filter.difficulty)
				if err != nil {
					return userErrorf("%v (want one of %s)", err, joinDifficulties(types.DifficultyLevels))
				}
				f.MaxDifficulty = d
			}
			if f.Subcategory != "" && f.Category == "" {
				return userErrorf("--subcategory requires --category")
			}

			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				r := c.List(cmd.Context(), f)
				if err := resultError(r, "formulas"); err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), r.Value)
				}
				writeFormulaTable(cmd.OutOrStdout(), r.Value, "No formulas found.")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&filter.category, "category", "", "only formulas of this category id")
	cmd.Flags().StringVar(&filter.subcategory, "subcategory", "", "only formulas of this subcategory (requires --category)")
	cmd.Flags().StringVar(&filter.difficulty, "difficulty", "", "only formulas at or below this level (beginner, intermediate, advanced)")
	return cmd
}

func (a *app) newCategoriesCmd() *cobra.Command {
	var idsOnly bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List formula categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				out := cmd.OutOrStdout()
				if idsOnly {
					r := c.GetCategories(cmd.Context())
					if err := resultError(r, "categories"); err != nil {
						return err
					}
					if a.flags.jsonMode {
						return writeJSON(out, r.Value)
					}
					for _, id := range r.Value {
						fmt.Fprintln(out, id)
					}
					return nil
				}

				r := c.Categories(cmd.Context())
				if err := resultError(r, "categories"); err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(out, r.Value)
				}
				rows := make([][]string, len(r.Value))
				for i, cat := range r.Value {
					rows[i] = []string{cat.ID, cat.Name, cat.Description}
				}
				writeTable(out, []string{"ID", "NAME", "DESCRIPTION"}, rows)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "print only the category ids used by formulas")
	return cmd
}

func (a *app) newDifficultiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "difficulties",
		Short: "List the difficulty levels present in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				r := c.GetDifficultyLevels(cmd.Context())
				if err := resultError(r, "difficulty levels"); err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), r.Value)
				}
				for _, d := range r.Value {
					fmt.Fprintln(cmd.OutOrStdout(), d)
				}
				return nil
			})
		},
	}
}

func joinDifficulties(levels []types.Difficulty) string {
	s := make([]string, len(levels))
	for i, d := range levels {
		s[i] = string(d)
	}
	return strings.Join(s, ", ")
}
