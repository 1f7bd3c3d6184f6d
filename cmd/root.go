package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tesserae/tesserae-web/internal/config"
)

var (
	cfgFile string
	verbose bool

	// logLevel is raised to debug by --verbose, otherwise set from log_level
	// once the config is loaded.
	logLevel = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "tesserae",
	Short: "Serve the Tesserae intertext search pages",
	Long: `Tesserae renders the search pages of the Tesserae intertext analyzer:
a Latin, French and French-Latin search form, the list of experimental tools
and the instructions. Pages are served over HTTP or exported as static files,
with every link built from the configured asset bases.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logLevel.Set(slog.LevelDebug)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
