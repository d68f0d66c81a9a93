// Package probe wraps ffprobe JSON output as a small queryable stream
// index, grounded on
// original_source/subs2cia/ffprobe_wrapper.py's FfprobeResult/FfprobeStream.
package probe

import "fmt"

// StreamDescriptor is the subset of an ffprobe stream entry the pipeline
// needs: its codec kind, its array position, and the units-per-second
// implied by its time_base.
type StreamDescriptor struct {
	ArrayIndex      int    // position within the streams array (what -map 0:N addresses).
	CodecType       string // "video", "audio", or "subtitle".
	CodecName       string
	UnitsPerSecond  int64 // reciprocal of time_base, e.g. time_base "1/1000" -> 1000.
	IsAttachedPic   bool
	IsBitmapSubCodec bool
	Language        string
}

// Result is the fully parsed output of a single ffprobe JSON call.
type Result struct {
	Streams []StreamDescriptor
}

// FirstMatching returns the first stream matching the given constraints.
// When index is non-nil, it selects streams[*index] directly by array
// position, per §4.5: the kind filter still applies to that single stream,
// so a mismatched codecType yields no match rather than ignoring the
// filter. Otherwise it scans in array order for the first stream whose
// CodecType equals codecType (or the first stream at all, if codecType is
// empty).
func (r *Result) FirstMatching(index *int, codecType string) (*StreamDescriptor, error) {
	if index != nil {
		if *index < 0 || *index >= len(r.Streams) {
			return nil, fmt.Errorf("probe: stream index %d out of range (0..%d)", *index, len(r.Streams)-1)
		}
		s := &r.Streams[*index]
		if codecType != "" && s.CodecType != codecType {
			return nil, nil
		}
		return s, nil
	}
	for i := range r.Streams {
		if codecType != "" && r.Streams[i].CodecType != codecType {
			continue
		}
		return &r.Streams[i], nil
	}
	return nil, nil
}

var bitmapSubCodecs = map[string]bool{
	"hdmv_pgs_subtitle": true,
	"dvd_subtitle":      true,
	"dvb_subtitle":      true,
	"xsub":              true,
}
