package main

// Kept minimal so the dashboard can be imported and run from elsewhere. The
// CLI itself lives in cmd/dashboard.

import "github.com/footystats/afl-dashboard/cmd/dashboard"

// Version is set at build time with -ldflags from `git describe`.
var Version = "undefined"

func main() {
	dashboard.Run(dashboard.BuildFlags{
		Version: Version,
	})
}
