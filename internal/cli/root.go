// Package cli implements the formulary command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/formulary/internal/logging"
	"github.com/mesh-intelligence/formulary/internal/paths"
	"github.com/mesh-intelligence/formulary/pkg/catalog"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// app is the state of one CLI invocation.
type app struct {
	flags     rootFlags
	configDir string
	config    *viper.Viper
	logger    *zap.Logger
	now       func() time.Time
}

func newApp() *app {
	return &app{
		logger: zap.NewNop(),
		now:    time.Now,
	}
}

// NewRootCmd creates the top-level "formulary" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "formulary",
		Short: "A searchable catalog of math formulas",
		Long: "Formulary browses, searches and bookmarks a catalog of mathematical formulas\n" +
			"stored in a local SQLite database.",
		Version:           catalog.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/formulary)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/formulary)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(
		a.newVersionCmd(),
		a.newInitCmd(),
		a.newListCmd(),
		a.newShowCmd(),
		a.newSearchCmd(),
		a.newFavoriteCmd(),
		a.newFavoritesCmd(),
		a.newRecentCmd(),
		a.newCategoriesCmd(),
		a.newDifficultiesCmd(),
		a.newHistoryCmd(),
		a.newPrefCmd(),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	return report(root.ErrOrStderr(), root.Execute())
}

// report prints err and maps it to an exit code. Errors that carry no code
// come from cobra argument parsing and count as user errors.
func report(w io.Writer, err error) int {
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(w, "formulary:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// setup loads config.yaml and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return systemError(err)
	}
	logger, err := logging.New(logging.ModeDevelopment, v.GetString(cfgKeyLogLevel))
	if err != nil {
		return userErrorf("config %s: %v", cfgKeyLogLevel, err)
	}

	a.configDir = configDir
	a.config = v
	a.logger = logger
	return nil
}

// storeConfig assembles the store configuration from flags and config.yaml.
func (a *app) storeConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg := types.Config{
		Backend:      a.config.GetString(cfgKeyBackend),
		DataDir:      dataDir,
		RecentLimit:  a.config.GetInt(cfgKeyRecentLimit),
		HistoryLimit: a.config.GetInt(cfgKeyHistoryLimit),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userErrorf("invalid configuration: %v", err)
	}
	return cfg, nil
}

// openCatalog attaches the store. The caller must Close the catalog.
func (a *app) openCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return nil, err
		}
		return nil, systemError(err)
	}
	c, err := catalog.Open(cmd.Context(), cfg,
		catalog.WithLogger(a.logger),
		catalog.WithClock(a.now))
	if err != nil {
		return nil, systemError(fmt.Errorf("open catalog: %w", err))
	}
	return c, nil
}

// withCatalog opens the catalog, runs fn and closes it again.
func (a *app) withCatalog(cmd *cobra.Command, fn func(c *catalog.Catalog) error) error {
	c, err := a.openCatalog(cmd)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}
