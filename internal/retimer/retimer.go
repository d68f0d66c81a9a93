// Package retimer maps a subtitle event's original (start,end) onto the
// condensed timeline described by a [timeranges.TimeRanges]: locate the
// run of ranges the event overlaps, clamp to their bounds, and subtract
// the cumulative skip preceding each end, following the shape of
// original_source/subs2cia/retiming_helpers.py's adjust_timing.
package retimer

import "github.com/backmassage/clipcondense/internal/timeranges"

// Retime returns the new (start,end) of an event under r, and ok=false if
// the event does not survive (it falls entirely within removed time), per
// §4.2.
func Retime(start, end int64, r *timeranges.TimeRanges) (newStart, newEnd int64, ok bool) {
	ranges := r.Ranges()
	n := len(ranges)
	if n == 0 {
		return 0, 0, false
	}

	// guess is the first range whose Start >= start; the range overlapping
	// (or nearest to) the event's start is either this one or its
	// predecessor.
	guess := r.IndexOf(start)

	firstIdx := -1
	if guess > 0 && ranges[guess-1].End >= start {
		firstIdx = guess - 1
	} else if guess < n && ranges[guess].Start <= end {
		firstIdx = guess
	}
	if firstIdx == -1 {
		return 0, 0, false
	}

	lastIdx := firstIdx
	for lastIdx+1 < n && ranges[lastIdx+1].Start <= end {
		lastIdx++
	}

	s, e := start, end
	if ranges[firstIdx].Start >= s {
		s = ranges[firstIdx].Start
	}
	if ranges[lastIdx].End <= e {
		e = ranges[lastIdx].End
	}

	skip := r.CumulativeSkip()
	s -= skip[firstIdx]
	e -= skip[lastIdx]

	if e <= s {
		return 0, 0, false
	}
	return s, e, true
}
