package main

import (
	"os"

	"github.com/zopdev/chartdoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
