package cli

import (
	"fmt"
	"io"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

type commands struct {
	Report *ReportCommand
	Serve  *ServeCommand
}

func buildParser(stdout io.Writer) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.HelpFlag|goflags.PassDoubleDash)
	parser.Name = "codetime"
	parser.LongDescription = "Tracks time spent on files from editor enter/leave events."

	cmds := &commands{
		Report: &ReportCommand{globals: &globals, stdout: stdout},
		Serve:  &ServeCommand{globals: &globals},
	}

	parser.AddCommand("report", "Ingest the event log and print a time summary", "Consume the event log, store new intervals, then print total time, the trailing window total and the daily average.", cmds.Report)
	parser.AddCommand("serve", "Run the HTTP service", "Serve GET /summary, POST /ingest and GET /metrics until interrupted.", cmds.Serve)

	return parser, &globals, cmds
}

// Run parses os.Args and executes the matched command.
func Run() error {
	return RunWithArgs(os.Args[1:], os.Stdout)
}

// RunWithArgs parses args and executes the matched command, printing reports to stdout.
func RunWithArgs(args []string, stdout io.Writer) error {
	parser, _, _ := buildParser(stdout)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			_, _ = fmt.Fprintln(stdout, flagsErr.Message)
			return nil
		}
		return err
	}
	return nil
}
