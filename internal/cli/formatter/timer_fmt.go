package formatter

import (
	"fmt"
	"strings"
	"time"

	"clockifish/internal/domain"
)

// FormatRunningTimer formats the currently running timer for display.
func FormatRunningTimer(entry *domain.TimeEntry, now time.Time) string {
	var b strings.Builder

	b.WriteString(Green("● timer running"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("description:"), describeEntry(entry)))
	if entry.ProjectID != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("project:"), entry.ProjectID))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("started:"), entry.StartTime.Local().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("elapsed:"), FormatElapsed(now.Sub(entry.StartTime))))

	return b.String()
}

// FormatStoppedTimer formats a just-stopped timer for display.
func FormatStoppedTimer(entry *domain.TimeEntry) string {
	elapsed := ""
	if entry.EndTime != nil {
		elapsed = fmt.Sprintf(" (%s)", FormatElapsed(entry.EndTime.Sub(entry.StartTime)))
	}
	return fmt.Sprintf("%s %s%s", Yellow("■ stopped"), describeEntry(entry), elapsed)
}

// FormatElapsed renders a duration as "1h 30m". Sub-minute durations render
// as "0m".
func FormatElapsed(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func describeEntry(entry *domain.TimeEntry) string {
	if entry.Description == "" {
		return Dim("(no description)")
	}
	return Bold(entry.Description)
}
