package application

import (
	"fmt"
	"strings"

	"tidydesk/internal/domain"
)

const rule = "============================================================"

// FormatReport renders the console report for an organize pass: the
// banner, one line per planned move, and the summary block. Dry runs
// get an explicit trailer so simulated output is never mistaken for a
// real run.
func FormatReport(r domain.Report) string {
	var b strings.Builder

	prefix := ""
	if r.DryRun {
		prefix = "DRY RUN - "
	}
	if r.Mode == domain.ModeDate {
		fmt.Fprintf(&b, "\n%sOrganizing files by date in: %s\n", prefix, r.SourceDir)
	} else {
		fmt.Fprintf(&b, "\n%sOrganizing files in: %s\n", prefix, r.SourceDir)
	}
	b.WriteString(rule + "\n")

	for _, m := range r.Moves {
		fmt.Fprintf(&b, "  %s\n", m)
	}

	b.WriteString(rule + "\n")
	if r.Mode == domain.ModeDate {
		fmt.Fprintf(&b, "Files organized: %d\n", r.Planned())
	} else {
		fmt.Fprintf(&b, "Files to organize: %d\n", r.Planned())
		fmt.Fprintf(&b, "Skipped (hidden): %d\n", r.SkippedHidden)
	}

	if failed := r.Failed(); len(failed) > 0 {
		fmt.Fprintf(&b, "Failed: %d\n", len(failed))
		for _, m := range failed {
			fmt.Fprintf(&b, "  %s: %v\n", m.Name, m.Err)
		}
	}

	if r.DryRun {
		b.WriteString("\nThis was a DRY RUN. No files were moved.\n")
		b.WriteString("Run with --live to actually move files.\n")
	}

	return b.String()
}
