package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/formulary/internal/paths"
	"github.com/mesh-intelligence/formulary/internal/sqlite"
	"github.com/mesh-intelligence/formulary/pkg/catalog"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and the formula database",
		Long: "Write a default config.yaml when none exists, then create and seed the\n" +
			"formula database. Running init again leaves existing data untouched.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	cfg, err := a.storeConfig()
	if err != nil {
		return err
	}

	wrote, err := writeConfigIfMissing(a.configDir, a.flags.dataDir)
	if err != nil {
		return systemError(err)
	}

	return a.withCatalog(cmd, func(c *catalog.Catalog) error {
		count := c.ListAll(cmd.Context())
		if err := resultError(count, "catalog"); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if a.flags.jsonMode {
			return writeJSON(out, map[string]any{
				"config":         paths.ConfigFile(a.configDir),
				"config_written": wrote,
				"database":       sqlite.Path(cfg.DataDir),
				"formulas":       len(count.Value),
			})
		}
		if wrote {
			fmt.Fprintf(out, "Wrote %s\n", paths.ConfigFile(a.configDir))
		}
		fmt.Fprintf(out, "Formulary initialized with %d formulas at %s\n",
			len(count.Value), sqlite.Path(cfg.DataDir))
		return nil
	})
}
