package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "chartdoc",
	Short: "Chart README viewer with a navigable table of contents",
	Long: `chartdoc fetches the README of a chart from a remote repository, renders
it to HTML and builds a table of contents with live search and scroll-spy
highlighting. It serves an interactive viewer, prints READMEs and their
contents from the command line, and exposes them to AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".chartdoc.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
