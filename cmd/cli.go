package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI.  The function is intentionally
// separated from the main package to keep the command usable from tests as
// well; it returns the process exit code instead of terminating itself.
func Run(args []string) int {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			return 0
		}
		log.Printf("%v", err)
		return 2
	}
	return check(opts)
}
