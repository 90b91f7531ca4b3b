package cli

import "io"

// GlobalFlags apply to every command.
type GlobalFlags struct {
	Config string `long:"config" short:"c" description:"Path to config file" default:"./configs/configs.yml"`
}

// ReportCommand ingests the event log and prints the time summary.
type ReportCommand struct {
	JSON   bool  `long:"json" description:"Output in JSON format"`
	Window int64 `long:"window" description:"Trailing window in seconds (-1 uses report.window_seconds; other negative values are rejected)" default:"-1"`

	globals *GlobalFlags
	stdout  io.Writer
}

// ServeCommand runs the HTTP service.
type ServeCommand struct {
	globals *GlobalFlags
}
