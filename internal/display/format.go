// Package display holds small human-facing formatting helpers used by
// the condense flow's summary output.
package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable size (e.g. "1.2 MB").
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.Bytes(uint64(-bytes))
	}
	return humanize.Bytes(uint64(bytes))
}

// FormatBytesWithSign prefixes with + or - for delta display (e.g. "- 1.2 GB").
func FormatBytesWithSign(bytes int64) string {
	switch {
	case bytes > 0:
		return "+ " + humanize.Bytes(uint64(bytes))
	case bytes < 0:
		return "- " + humanize.Bytes(uint64(-bytes))
	default:
		return humanize.Bytes(0)
	}
}

// FormatDuration renders a duration given in hundredths of a second as
// "H:MM:SS.CC", matching the on-disk ASS timestamp format so that
// progress output and subtitle timestamps read consistently.
func FormatDuration(hundredths int64) string {
	if hundredths < 0 {
		hundredths = 0
	}
	hours := hundredths / (100 * 60 * 60)
	mins := (hundredths / (100 * 60)) % 60
	secs := (hundredths / 100) % 60
	cs := hundredths % 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, mins, secs, cs)
}
