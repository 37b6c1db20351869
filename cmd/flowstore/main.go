package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/flowstore/logging"
	"github.com/hupe1980/flowstore/session"
	"github.com/hupe1980/flowstore/settings"
	"github.com/hupe1980/flowstore/storage/local"
)

var (
	configDir string
	dataDir   string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "flowstore",
	Short: "Manage flow-scoped files on local disk",
	Long: `flowstore stores files under a root directory, one subdirectory per flow.
The root comes from the settings file (or FLOWSTORE_DATA_DIR / --data-dir).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.flowstore)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the root data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newStore wires a local disk store from the settings service and the
// command line overrides.
func newStore() (*local.Store, error) {
	svc, err := settings.New(configDir)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		svc.SetDataDir(dataDir)
	}

	level := logging.ParseLogLevel(svc.LogLevel())
	if verbose {
		level = logging.LogLevelDebug
	}
	logger := logging.NewSlogLogger(level, svc.LogFormat(), false)

	store := local.New(svc, session.NewInMemoryStore(), func(o *local.Options) {
		o.Logger = logger.WithComponent("store")
	})
	return store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
