package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/kreatorpajak/freelance-tax/internal/domain"
)

// GenerateReport renders report with the named formatter. "all" writes the
// detailed console report followed by the bracket CSV.
func GenerateReport(w io.Writer, report *domain.TaxReport, format string) error {
	if report == nil || report.Result == nil {
		return fmt.Errorf("report has no result")
	}
	if NormalizeFormatName(format) == "all" {
		if err := WriteFormatted(w, ConsoleFormatter{}, report); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return WriteFormatted(w, CSVBracketExporter{}, report)
	}
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(w, f, report)
}
