package cmd

import (
	"fmt"
	"os"

	"survivalist-gamedata/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time:
//
//	go build -ldflags "-X survivalist-gamedata/cmd.Version=1.4.0"
var Version = "dev"

var (
	configDir  string
	dumpConfig bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "survivalist-gamedata",
	Short: "Extract item and recipe tables from Survivalist game data",
	Long: `Survivalist Gamedata reads the game's XML item and recipe definitions,
normalizes them and writes CSV files and SteamML tables for publication.
Without a subcommand every enabled pipeline runs.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dumpConfig {
			return printConfig(cmd)
		}
		return runPipelines(cmd.Context())
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We use "debug" level configuration to get ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding config.yaml and .env")
	RootCmd.Flags().BoolVar(&dumpConfig, "dump-config", false, "print the effective configuration and exit")
}
