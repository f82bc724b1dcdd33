package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/hiergen/internal/config"
	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/wire"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the hiergen configuration",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configInitCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configShow(cmd.OutOrStdout(), wire.Config())
		},
	}
}

func configShow(out io.Writer, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	_, err = out.Write(data)
	return err
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write .hiergen/config.yaml with the default naming and settings.

Edit naming.unreal_base_header to "GameFramework/Actor.h" to include the
engine header from the root Unreal class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configInitRunE(cmd.OutOrStdout(), os.Getwd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

// configInitRunE is split out so tests can inject the working directory.
func configInitRunE(out io.Writer, getwd func() (string, error), force bool) error {
	dir, err := configDir(getwd)
	if err != nil {
		return err
	}

	path := config.ConfigPath(dir)
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"pass --force to overwrite it",
		)
	}

	if err := config.SaveConfig(dir, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Config written to %s\n", path)
	return nil
}
