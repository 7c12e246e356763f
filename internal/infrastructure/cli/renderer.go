package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/backwardspy/randnd/internal/domain"
)

// RenderPhrase prints a single fetched phrase.
func RenderPhrase(w io.Writer, category, phrase string) {
	fmt.Fprintf(w, "[%s] %s\n", category, phrase)
}

// RenderFeedRecords prints feed log entries in a friendly, ASCII-only format.
func RenderFeedRecords(w io.Writer, records []domain.FeedRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No feed log entries.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s  %-10s  %s\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Category,
			rec.Phrase,
		)
	}
	fmt.Fprintf(w, "\n%d entries\n", len(records))
}

// RenderDoctorReport prints diagnostic results.
func RenderDoctorReport(w io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(w, "[%s] %s: %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
	if report.Healthy() {
		fmt.Fprintln(w, "\nAll checks passed.")
	}
}
