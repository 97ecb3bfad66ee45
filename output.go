package pkgcss

import (
	"fmt"
	"io"
	"os"

	core "github.com/yacobolo/pkgcss/internal/pkgcss"
)

// Report formats accepted by the list command
const (
	OutputText = core.OutputText
	OutputJSON = core.OutputJSON
)

// DetermineOutputFormat maps the --output-format flag to a format.
// Unknown values fall back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "text", "":
		return OutputText
	default:
		fmt.Fprintf(os.Stderr, "unknown output format %q, using text\n", formatFlag)
		return OutputText
	}
}

// WriteOutput writes the discovery report in the specified format
func WriteOutput(w io.Writer, result *ScanResult, format OutputFormat, forceColor bool) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)

	default:
		reporter := core.NewReporter(w, forceColor)
		reporter.PrintPackages(result)
		reporter.PrintWarnings(result.Warnings)
		reporter.PrintSummary(result)
		return nil
	}
}
