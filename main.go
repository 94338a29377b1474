// main.go

package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

// main
func main() {
	writer := newOutputWriter()

	// parse params,
	var p params
	parser := flags.NewParser(&p, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err == nil {
		// run with the params
		exit, err := run(parser, p, writer)
		if err != nil {
			writer.error(
				"Error: %s",
				err,
			)
		}

		os.Exit(exit)
	} else {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp { // for help,
			os.Exit(writer.printHelpBeforeExit(0, parser))
		}

		os.Exit(writer.printErrorBeforeExit(
			1,
			"Failed to parse flags: %s",
			err,
		))
	}
}
