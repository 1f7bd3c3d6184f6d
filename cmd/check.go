package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and render every page once",
	Long: `Loads the config and the page catalog, reports catalog warnings (such as a
selected feature missing from a page's feature set) and renders every page to
make sure no partial fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := buildSite(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		pages := s.Catalog().Pages()
		for _, p := range pages {
			if err := s.RenderPage(io.Discard, p); err != nil {
				return fmt.Errorf("page %s does not render: %w", p.ID, err)
			}
		}
		warnings := s.Catalog().Warnings()
		for _, w := range warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		fmt.Fprintf(out, "%d pages OK, %d warnings\n", len(pages), len(warnings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
