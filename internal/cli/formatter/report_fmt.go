package formatter

import (
	"fmt"
	"strings"

	"clockifish/internal/report"
)

// FormatReport formats an aggregated report window. The displayed end date
// is pulled back inside the window; the exclusive bound is a query detail.
// Hour totals are rounded to two decimals here and nowhere else.
func FormatReport(title string, window report.Window, totalHours float64) string {
	var b strings.Builder

	b.WriteString(Header(title))
	b.WriteString(Dim(fmt.Sprintf("  %s through %s",
		window.Start.Format("Mon 2006-01-02"),
		window.DisplayEnd().Format("Mon 2006-01-02"))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("total:"), Bold(FormatHours(totalHours))))

	return b.String()
}

// FormatHours renders fractional hours with two decimals, e.g. "1.50 hours".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f hours", hours)
}
