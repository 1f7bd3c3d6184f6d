package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tesserae/tesserae-web/internal/progress"
)

var renderCmd = &cobra.Command{
	Use:   "render [page-pattern...]",
	Short: "Export pages as static HTML files",
	Long: `Renders the configured pages into the output directory, one index.html per
route, plus a manifest.json describing the build. Patterns are doublestar
globs matched against page ids and routes; with none, every page is rendered.

  tesserae render            # every page
  tesserae render 'french*'  # french and french-latin`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "override output directory (defaults to output_dir)")
	renderCmd.Flags().Bool("stdout", false, "write a single page to stdout instead of exporting")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := buildSite(cfg)
	if err != nil {
		return err
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		if len(args) != 1 {
			return fmt.Errorf("--stdout needs exactly one page id")
		}
		return s.Render(cmd.OutOrStdout(), args[0])
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	m, err := s.Export(outputDir, args, progress.NewReporter())
	if err != nil {
		return fmt.Errorf("rendering site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d pages to %s (build %s)\n", len(m.Pages), outputDir, m.BuildID)
	return nil
}
