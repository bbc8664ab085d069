package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/pkg/catalog"
)

func (a *app) newPrefCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pref",
		Short: "Read and write user preferences",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print the value of a preference",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				key := args[0]
				return a.withCatalog(cmd, func(c *catalog.Catalog) error {
					r := c.Preference(cmd.Context(), key)
					if err := resultError(r, fmt.Sprintf("preference %q", key)); err != nil {
						return err
					}
					if a.flags.jsonMode {
						return writeJSON(cmd.OutOrStdout(), map[string]string{"key": key, "value": r.Value})
					}
					fmt.Fprintln(cmd.OutOrStdout(), r.Value)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Store a preference",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				if key == "" {
					return userErrorf("preference key must not be empty")
				}
				return a.withCatalog(cmd, func(c *catalog.Catalog) error {
					if err := resultError(c.SetPreference(cmd.Context(), key, value), "preference"); err != nil {
						return err
					}
					if a.flags.jsonMode {
						return writeJSON(cmd.OutOrStdout(), map[string]string{"key": key, "value": value})
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "unset <key>",
			Short: "Remove a preference",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				key := args[0]
				if key == "" {
					return userErrorf("preference key must not be empty")
				}
				return a.withCatalog(cmd, func(c *catalog.Catalog) error {
					if err := resultError(c.DeletePreference(cmd.Context(), key), "preference"); err != nil {
						return err
					}
					if a.flags.jsonMode {
						return writeJSON(cmd.OutOrStdout(), map[string]string{"key": key})
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every stored preference",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withCatalog(cmd, func(c *catalog.Catalog) error {
					r := c.Preferences(cmd.Context())
					if err := resultError(r, "preferences"); err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					if a.flags.jsonMode {
						return writeJSON(out, r.Value)
					}
					if len(r.Value) == 0 {
						fmt.Fprintln(out, "No preferences set.")
						return nil
					}
					rows := make([][]string, len(r.Value))
					for i, p := range r.Value {
						rows[i] = []string{p.Key, p.Value}
					}
					writeTable(out, []string{"KEY", "VALUE"}, rows)
					return nil
				})
			},
		},
	)
	return cmd
}
