// Package subtitles implements the streaming, preservation-first ASS
// ("Advanced SubStation Alpha") dialogue parser and rewriter described in
// §4.3, grounded on original_source/subs2cia/subtitles_ass.py,
// subtitles_types.py, and subtitles.py.
package subtitles

// Event is a single subtitle dialogue event. Start and End are in Event
// units (100 per second for ASS). RawText is the line's Text field as it
// appeared in the source; PlainText is the escape-decoded reading.
type Event struct {
	Start, End int64
	RawText    string
	PlainText  string
}

// Subtitles holds a parsed document: its events, in source order, and the
// units-per-second those events' Start/End are expressed in.
type Subtitles struct {
	Events              []Event
	EventUnitsPerSecond int64
}

// FilterEvents replaces s.Events with only the events for which keep
// returns true, preserving order.
func (s *Subtitles) FilterEvents(keep func(Event) bool) {
	out := s.Events[:0]
	for _, e := range s.Events {
		if keep(e) {
			out = append(out, e)
		}
	}
	s.Events = out
}
