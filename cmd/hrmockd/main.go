// hrmockd - synthetic HR and payroll REST API for integration testing
package main

import (
	"context"
	"os"

	"github.com/getmockd/hrmockd/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate

	return cli.Execute(context.Background(), cli.DefaultArgs(os.Args[1:]))
}
