package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// newRootCmd builds the command tree. Each call returns fresh commands so
// flag state never leaks between invocations.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hrmockd",
		Short: "hrmockd serves a synthetic HR and payroll REST API",
		Long: `hrmockd generates an internally consistent HR dataset (departments, locations,
positions, users, employees, leave, candidates) at startup and serves it through
read-only, paginated, filterable endpoints plus a stub OAuth token issuer.

Configuration can be provided via flags, environment variables, or a YAML file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newExportCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI with args (without the program name). It returns
// the process exit code.
func Execute(ctx context.Context, args []string) int {
	return execute(ctx, args, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// DefaultArgs makes serve the default command: no arguments, or a leading
// flag other than help or version, run serve.
func DefaultArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"serve"}
	}
	switch first := args[0]; {
	case first == "-h" || first == "--help":
		return args
	case first == "-v" || first == "--version":
		return []string{"version"}
	case first != "" && first[0] == '-':
		return append([]string{"serve"}, args...)
	}
	return args
}
