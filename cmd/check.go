package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/geminitools/tomlcheck/checker"
)

// check runs the one validation this tool performs and prints the outcome.
// Both outcomes exit 0: failures are reported, not raised.
func check(opts *Options) int {
	svc := checker.New()
	err := svc.Check(context.Background(), opts.Location())
	fmt.Fprintln(os.Stdout, checker.Report(err))
	return 0
}
