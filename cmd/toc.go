package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zopdev/chartdoc/internal/navigator"
	"github.com/zopdev/chartdoc/internal/progress"
	"github.com/zopdev/chartdoc/internal/sidebar"
)

var tocQuery string

var tocCmd = &cobra.Command{
	Use:   "toc <chart>",
	Short: "Print the table of contents of a chart README",
	Long:  `Fetches and renders the README of a chart and prints its h1 and h2 sections, optionally filtered with --query.`,
	Args:  cobra.ExactArgs(1),
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
		if !res.Found {
			return fmt.Errorf("no README available for %q", id)
		}

		nav := page.Navigator()
		nav.Filter(tocQuery)
		printTOC(cmd.OutOrStdout(), nav.Visible())
		return nil
	},
}

func init() {
	tocCmd.Flags().StringVarP(&tocQuery, "query", "q", "", "only list sections whose title contains this text")
	rootCmd.AddCommand(tocCmd)
}

// noSchedule drops scroll-spy re-evaluations; one-shot commands have no
// viewport to track.
func noSchedule(time.Duration, func()) {}

func printTOC(w io.Writer, entries []sidebar.Entry) {
	for _, e := range entries {
		if e.ShowAll {
			continue
		}
		indent := ""
		if e.Level == 2 {
			indent = "  "
		}
		fmt.Fprintf(w, "%s%s  %s\n", indent, e.Label, e.Href)
	}
}
