package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/internal/seed"
	"github.com/mesh-intelligence/formulary/pkg/catalog"
)

const modulePath = "github.com/mesh-intelligence/formulary"

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the formulary version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": catalog.Version,
					"catalog": seed.Version,
					"module":  modulePath,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "formulary v%s\ncatalog: %s\nmodule: %s\n",
				catalog.Version, seed.Version, modulePath)
			return nil
		},
	}
}
