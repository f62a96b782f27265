// docassert: compare JSON documents from the command line
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	exitNoDiff   = 0
	exitDiff     = 1
	exitTroubles = 2
)

// errDifferent is returned by commands that completed but found the
// documents to differ
var errDifferent = errors.New("documents differ")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docassert",
		Short: "Compare JSON documents with ignored paths and unordered arrays",
		Long: `docassert compares an actual JSON document with an expected one.
Locations are addressed with JSONPath-like expressions such as $.items[*].id
and can be excluded from the comparison or compared ignoring array order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newPathCmd())
	cmd.AddCommand(newGetCmd())
	return cmd
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitNoDiff
	case errors.Is(err, errDifferent):
		return exitDiff
	}
	return exitTroubles
}

func main() {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, errDifferent) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
