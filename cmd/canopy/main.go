package main

import (
	"os"

	"github.com/canopymap/canopy/internal/cli"
	"github.com/canopymap/canopy/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)

	// Cobra reports the failing command's error itself.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
