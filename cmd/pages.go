package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the configured pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := buildSite(cfg)
		if err != nil {
			return err
		}

		reg := s.Registry()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORY\tLANGUAGES\tFEATURES\tURL")
		for _, p := range s.Catalog().Pages() {
			langs := "-"
			if !p.Lang.IsZero() {
				langs = p.Lang.Source + "→" + p.Lang.Target
			}
			features := "-"
			if p.Features.Len() > 0 {
				features = strings.Join(p.Features.Keys(), ",")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Category, langs, features, reg.HTML(p.Path))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
