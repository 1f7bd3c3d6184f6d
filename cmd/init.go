package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tesserae/tesserae-web/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with an interactive wizard",
	Long:  `Asks for the site title, the asset base URLs and the port, then writes them to the config file (.tesserae.yml unless --config says otherwise).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
