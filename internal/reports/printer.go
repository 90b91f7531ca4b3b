package reports

import (
	"encoding/json"
	"fmt"
	"io"

	"code-time/internal/models"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Printer writes a summary report.
type Printer interface {
	Print(w io.Writer, summary *models.TimeSummary) error
}

// NewPrinter returns the printer for format, falling back to text for anything but json.
func NewPrinter(format string) Printer {
	if format == FormatJSON {
		return &jsonPrinter{}
	}
	return &textPrinter{}
}

type textPrinter struct{}

func (p *textPrinter) Print(w io.Writer, summary *models.TimeSummary) error {
	readable, err := NewReadableSummary(summary)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Total time: %s\nLatest %s: %s\nDaily average: %s\n",
		readable.Total, readable.WindowLabel, readable.Window, readable.DailyAverage)
	return err
}

type jsonPrinter struct{}

func (p *jsonPrinter) Print(w io.Writer, summary *models.TimeSummary) error {
	readable, err := NewReadableSummary(summary)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(readable)
}
