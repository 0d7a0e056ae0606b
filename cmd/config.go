package cmd

import (
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads config.yaml, the .env file and environment overrides and prints the
result as YAML. Secrets are left out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printConfig(cmd)
	},
}

func printConfig(cmd *cobra.Command) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	return cfg.Dump(cmd.OutOrStdout())
}

func init() {
	RootCmd.AddCommand(configCmd)
}
