package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"Gprompt/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {

	var defaults bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration gprompt renders with, as YAML: defaults
overlaid by the config file and GPROMPT_* environment variables.
The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			cfg := config.Default()
			if !defaults {
				var err error
				cfg, err = config.Load(opts.configFile)
				if err != nil {
					return err
				}
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return encoder.Close()
		},
	}

	configCmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults")

	return configCmd
}
