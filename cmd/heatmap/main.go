// heatmap renders the monthly global land-surface temperature heatmap,
// either once to a file or continuously over HTTP.
package main

import (
	"os"

	"github.com/jengzang/temperature-heatmap-go/cmd/heatmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
