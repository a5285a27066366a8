package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-battle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in tanks.yaml. Save it to
~/.tankbattle/configs/tanks.yaml or pass it with --config to customize
arena size, speeds, level quotas and the boss.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
