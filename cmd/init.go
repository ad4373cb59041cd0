package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zopdev/chartdoc/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize chartdoc configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure where chart READMEs are fetched from and generates a .chartdoc.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
