package cmd

import (
	"fmt"

	"roomctl/pkg/config"
	"roomctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage roomctl configuration",
	Long:  "View or edit your local configuration settings (data directory, file name tokens, column names).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setDir, _ := cmd.Flags().GetString("set-data-dir")
		if setDir != "" {
			cfg.DataDir = setDir
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ Data directory set to: %s\n", setDir)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-data-dir", "s", "", "Set the directory holding the timetable exports")
}
