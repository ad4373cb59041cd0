package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zopdev/chartdoc/internal/navigator"
	"github.com/zopdev/chartdoc/internal/progress"
)

var renderCmd = &cobra.Command{
	Use:   "render <chart>",
	Short: "Render a chart README to HTML",
	Long: `Fetches the README of a chart and prints the rendered HTML to stdout. Every
h1 and h2 heading carries the id the table of contents links to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		id := args[0]
		printLocations(cfg, id)

		f := newFactory(cfg, nil)
		f.NavOptions.Schedule = noSchedule
		page := f.NewPage(navigator.NewStaticViewport(0, nil), progress.NewIndicator(os.Stderr))

		res := page.Load(cmd.Context(), id)
		fmt.Fprintln(cmd.OutOrStdout(), res.HTML)
		if !res.Found {
			return fmt.Errorf("no README available for %q", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
