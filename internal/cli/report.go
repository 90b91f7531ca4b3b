package cli

import (
	"context"

	"code-time/internal/app"
	"code-time/internal/reports"
	"code-time/internal/shared/configs"
)

// Execute implements the go-flags Commander interface for ReportCommand.
func (c *ReportCommand) Execute(_ []string) error {
	cfg, err := configs.LoadConfig(c.globals.Config)
	if err != nil {
		return err
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer application.Close(ctx) //nolint:errcheck

	return application.Report(ctx, c.stdout, c.options(cfg))
}

func (c *ReportCommand) options(cfg *configs.Config) app.ReportOptions {
	opts := app.ReportOptions{
		Format:        reports.FormatText,
		WindowSeconds: cfg.Report.WindowSeconds,
	}
	if c.JSON {
		opts.Format = reports.FormatJSON
	}
	// -1 keeps the configured window; other negative values are rejected by the aggregator.
	if c.Window != -1 {
		opts.WindowSeconds = c.Window
	}
	return opts
}
