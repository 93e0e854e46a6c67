// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of a
// calculation result.
package output

import (
	"io"

	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is the complete renderable output of one estimate.
type Report struct {
	// Vehicle identifies the estimated vehicle
	Vehicle types.VehicleIdentity `json:"vehicle"`

	// Transaction is purchase or lease
	Transaction types.TransactionType `json:"transaction"`

	// HorizonYears is the analysis horizon
	HorizonYears int `json:"horizon_years"`

	// Result is the full calculation result
	Result *types.Result `json:"result"`

	// Version is the tool version
	Version string `json:"version"`
}

// New returns the formatter for a format name.
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Inputf("unknown output format: %q", format)
	}
}
