package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hiergen/internal/config"
	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/logging"
	"github.com/example/hiergen/internal/wire"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbosity int
	jsonLogs  bool
	configDir string
}

var global globalFlags

// AddGlobalFlags registers the persistent flags on the root command.
func AddGlobalFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.CountVarP(&global.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	flags.BoolVar(&global.jsonLogs, "json-logs", false, "emit logs as JSON")
	flags.StringVar(&global.configDir, "config-dir", "", "directory holding .hiergen/ (default: working directory)")
}

// Initialize loads the configuration, starts the logger and configures the
// services. It is the root command's PersistentPreRunE.
func Initialize(cmd *cobra.Command, args []string) error {
	dir, err := configDir(os.Getwd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity = global.verbosity
	}
	if global.jsonLogs {
		cfg.Log.JSON = true
	}

	if err := logging.Initialize(logging.Options{
		JSON:      cfg.Log.JSON,
		Verbosity: cfg.Log.Verbosity,
	}); err != nil {
		return errors.Wrap(err, "failed to initialize logging")
	}
	logging.Logger.Debugw("Configuration loaded", "dir", dir, "manifest", cfg.Manifest.Enabled)

	wire.Configure(cfg)
	return nil
}

// Finalize flushes the logger and closes the manifest.
func Finalize() error {
	logging.Sync()
	return wire.Close()
}

// Execute runs the root command and finalizes afterwards, also when the
// command failed. The command error takes precedence over a close error.
func Execute(root *cobra.Command) error {
	err := root.Execute()
	if closeErr := Finalize(); err == nil {
		err = closeErr
	}
	return err
}

func configDir(getwd func() (string, error)) (string, error) {
	if global.configDir != "" {
		return global.configDir, nil
	}
	dir, err := getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}
	return dir, nil
}
