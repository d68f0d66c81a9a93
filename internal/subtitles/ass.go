package subtitles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/backmassage/clipcondense/internal/retimer"
	"github.com/backmassage/clipcondense/internal/timeranges"
)

// EventUnitsPerSecond is the fixed resolution of ASS timestamps: one
// hundredth of a second.
const EventUnitsPerSecond = 100

// ParseTime decodes an ASS `H:MM:SS.CC` timestamp into hundredths of a
// second. Parsing is strict: exactly three colon-parts, exactly two
// dot-parts in the seconds segment, all values non-negative.
func ParseTime(field string) (int64, error) {
	parts := strings.Split(field, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("subtitles: invalid time field %q, expected H:MM:SS.CC", field)
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("subtitles: invalid hours in %q: %w", field, err)
	}
	mins, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("subtitles: invalid minutes in %q: %w", field, err)
	}
	secParts := strings.Split(parts[2], ".")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("subtitles: invalid seconds.hundredths in %q", field)
	}
	secs, err := strconv.ParseInt(secParts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("subtitles: invalid seconds in %q: %w", field, err)
	}
	hundredths, err := strconv.ParseInt(secParts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("subtitles: invalid hundredths in %q: %w", field, err)
	}
	if hours < 0 || mins < 0 || secs < 0 || hundredths < 0 {
		return 0, fmt.Errorf("subtitles: negative value in time field %q", field)
	}
	return hundredths + secs*100 + mins*100*60 + hours*100*60*60, nil
}

// UnparseTime encodes hundredths of a second as an ASS `H:MM:SS.CC`
// timestamp, the inverse of [ParseTime].
func UnparseTime(hundredths int64) (string, error) {
	if hundredths < 0 {
		return "", fmt.Errorf("subtitles: negative time %d cannot be unparsed", hundredths)
	}
	hours := hundredths / (100 * 60 * 60)
	mins := (hundredths / (100 * 60)) % 60
	secs := (hundredths / 100) % 60
	hundredthsPart := hundredths % 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, mins, secs, hundredthsPart), nil
}

// EscapeToPlainText scans text left to right, replacing each `\n` or `\N`
// two-character sequence with a single line feed. Every other character,
// including a lone trailing backslash, is copied as-is.
func EscapeToPlainText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			next := runes[i+1]
			if next == 'n' || next == 'N' {
				b.WriteByte('\n')
				i += 2
				continue
			}
		}
		b.WriteRune(c)
		i++
	}
	return b.String()
}

const (
	stateSeekEvents = iota
	stateReadFormat
	stateReadEvents
)

// format describes the field layout declared by an ASS `Format:` line.
type format struct {
	fields   []string
	startIdx int
	endIdx   int
	textIdx  int
}

func parseFormatLine(line string) (*format, error) {
	rest := strings.TrimPrefix(line, "Format:")
	fields := strings.Split(rest, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	f := &format{fields: fields, startIdx: -1, endIdx: -1, textIdx: -1}
	for i, name := range fields {
		switch name {
		case "Start":
			f.startIdx = i
		case "End":
			f.endIdx = i
		case "Text":
			f.textIdx = i
		}
	}
	if f.endIdx == -1 {
		return nil, fmt.Errorf("subtitles: malformed Format line, does not contain \"End\"")
	}
	if f.startIdx == -1 {
		return nil, fmt.Errorf("subtitles: malformed Format line, does not contain \"Start\"")
	}
	if f.textIdx == -1 {
		return nil, fmt.Errorf("subtitles: malformed Format line, does not contain \"Text\"")
	}
	if f.textIdx != len(f.fields)-1 {
		return nil, fmt.Errorf("subtitles: malformed Format line, \"Text\" must be the last field")
	}
	return f, nil
}

// splitLimited splits s on sep into at most limit+1 pieces, the way
// Python's str.split(sep, maxsplit) does.
func splitLimited(s, sep string, limit int) []string {
	if limit < 0 {
		return strings.Split(s, sep)
	}
	out := make([]string, 0, limit+1)
	for i := 0; i < limit; i++ {
		idx := strings.Index(s, sep)
		if idx == -1 {
			break
		}
		out = append(out, s[:idx])
		s = s[idx+len(sep):]
	}
	out = append(out, s)
	return out
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return sc
}

// Parse reads an ASS document and returns its dialogue events. Every line
// is examined only enough to drive the three-state parser described in
// §4.3; unrecognized lines are simply skipped (they carry no event data).
func Parse(r io.Reader) (*Subtitles, error) {
	sc := newLineScanner(r)

	state := stateSeekEvents
	var fmtInfo *format
	var events []Event

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r\n\v\f")

		switch state {
		case stateSeekEvents:
			if line == "[Events]" {
				state = stateReadFormat
			}

		case stateReadFormat:
			if !strings.HasPrefix(line, "Format:") {
				return nil, fmt.Errorf("subtitles: expected a Format line, got: %s", line)
			}
			f, err := parseFormatLine(line)
			if err != nil {
				return nil, err
			}
			fmtInfo = f
			state = stateReadEvents

		case stateReadEvents:
			if line == "" {
				state = stateSeekEvents
				continue
			}
			if !strings.HasPrefix(line, "Dialogue:") {
				continue
			}
			fields := splitLimited(strings.TrimSpace(line[len("Dialogue:"):]), ",", len(fmtInfo.fields)-1)
			if len(fields) != len(fmtInfo.fields) {
				return nil, fmt.Errorf("subtitles: malformed event, got %d fields, expected %d", len(fields), len(fmtInfo.fields))
			}
			start, err := ParseTime(fields[fmtInfo.startIdx])
			if err != nil {
				return nil, err
			}
			end, err := ParseTime(fields[fmtInfo.endIdx])
			if err != nil {
				return nil, err
			}
			raw := fields[fmtInfo.textIdx]
			events = append(events, Event{
				Start:     start,
				End:       end,
				RawText:   raw,
				PlainText: EscapeToPlainText(raw),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("subtitles: read: %w", err)
	}

	return &Subtitles{Events: events, EventUnitsPerSecond: EventUnitsPerSecond}, nil
}

// Retime streams in, rewrites every Dialogue line's Start/End field
// against r (rescaled to 100 UPS, per §4.3), and writes the result to
// out. Lines that are not recognized dialogue lines keep their content,
// but are not copied byte for byte: trailing whitespace (including a
// carriage return) is removed and each line is ended with a single "\n".
// Events whose retimed range is dropped are omitted from the output.
func Retime(in io.Reader, out io.Writer, r *timeranges.TimeRanges) error {
	scaled, err := r.WithUnitsPerSecond(EventUnitsPerSecond)
	if err != nil {
		return fmt.Errorf("subtitles: rescale time ranges: %w", err)
	}

	sc := newLineScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	state := stateSeekEvents
	var fmtInfo *format

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r\n\v\f")

		switch state {
		case stateSeekEvents:
			if line == "[Events]" {
				state = stateReadFormat
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}

		case stateReadFormat:
			if !strings.HasPrefix(line, "Format:") {
				return fmt.Errorf("subtitles: expected a Format line, got: %s", line)
			}
			f, err := parseFormatLine(line)
			if err != nil {
				return err
			}
			fmtInfo = f
			state = stateReadEvents
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}

		case stateReadEvents:
			if line == "" {
				state = stateSeekEvents
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
				continue
			}
			if !strings.HasPrefix(line, "Dialogue:") {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
				continue
			}

			fields := splitLimited(strings.TrimSpace(line[len("Dialogue:"):]), ",", len(fmtInfo.fields)-1)
			if len(fields) != len(fmtInfo.fields) {
				return fmt.Errorf("subtitles: malformed event, got %d fields, expected %d", len(fields), len(fmtInfo.fields))
			}

			start, err := ParseTime(fields[fmtInfo.startIdx])
			if err != nil {
				return err
			}
			end, err := ParseTime(fields[fmtInfo.endIdx])
			if err != nil {
				return err
			}

			newStart, newEnd, ok := retimer.Retime(start, end, scaled)
			if !ok {
				continue
			}

			fields[fmtInfo.startIdx], err = UnparseTime(newStart)
			if err != nil {
				return err
			}
			fields[fmtInfo.endIdx], err = UnparseTime(newEnd)
			if err != nil {
				return err
			}

			if _, err := w.WriteString("Dialogue: "); err != nil {
				return err
			}
			if _, err := w.WriteString(strings.Join(fields, ",")); err != nil {
				return err
			}
			if _, err := w.WriteString("\n"); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("subtitles: read: %w", err)
	}
	return nil
}
