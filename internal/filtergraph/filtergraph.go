// Package filtergraph builds ffmpeg `-filter_complex` scripts that trim a
// stream down to a set of time ranges and concatenate the surviving
// segments back together. Grounded on
// original_source/subs2cia/ffmpeg_helpers.py's
// write_complex_filter_for_audio_trim and
// write_complex_filter_for_video_trim.
package filtergraph

import (
	"fmt"
	"strings"

	"github.com/backmassage/clipcondense/internal/timeranges"
)

// WriteAudioTrim appends an atrim+concat chain for every range in r,
// reading from input stream fileIndex:streamIndex, and returns the
// filter-graph label carrying the final concatenated audio.
func WriteAudioTrim(b *strings.Builder, r *timeranges.TimeRanges, fileIndex, streamIndex int) (string, error) {
	return writeTrimChain(b, r, fileIndex, streamIndex, trimKindAudio)
}

// WriteVideoTrim appends a trim+concat chain for every range in r,
// reading from input stream fileIndex:streamIndex, and returns the
// filter-graph label carrying the final concatenated video.
func WriteVideoTrim(b *strings.Builder, r *timeranges.TimeRanges, fileIndex, streamIndex int) (string, error) {
	return writeTrimChain(b, r, fileIndex, streamIndex, trimKindVideo)
}

type trimKind int

const (
	trimKindAudio trimKind = iota
	trimKindVideo
)

// The audio and video trim chains are structurally identical but use
// different filter names (atrim/asetpts vs trim/setpts) and a different
// concat flag set (a=1 vs the video default), so they are not
// deduplicated beyond this shared driver.
func writeTrimChain(b *strings.Builder, r *timeranges.TimeRanges, fileIndex, streamIndex int, kind trimKind) (string, error) {
	ranges := r.Ranges()
	if len(ranges) == 0 {
		return "", fmt.Errorf("filtergraph: no time ranges to trim")
	}

	var segPrefix, concatPrefix, trimFilter, setptsFilter, concatFlags string
	switch kind {
	case trimKindAudio:
		segPrefix, concatPrefix = "a", "ca"
		trimFilter, setptsFilter = "atrim", "asetpts"
		concatFlags = "concat=v=0:a=1"
	case trimKindVideo:
		segPrefix, concatPrefix = "v", "cv"
		trimFilter, setptsFilter = "trim", "setpts"
		concatFlags = "concat"
	}

	var segments []string
	segCount, concatCount := 0, 0

	for _, rg := range ranges {
		out := fmt.Sprintf("%s%d", segPrefix, segCount)
		segCount++

		fmt.Fprintf(b, "[%d:%d]%s=start_pts=%d:end_pts=%d,%s=PTS-STARTPTS[%s];",
			fileIndex, streamIndex, trimFilter, rg.Start, rg.End, setptsFilter, out)

		segments = append(segments, out)

		if len(segments) >= 2 {
			concatOut := fmt.Sprintf("%s%d", concatPrefix, concatCount)
			concatCount++

			s2 := segments[len(segments)-1]
			s1 := segments[len(segments)-2]
			segments = segments[:len(segments)-2]

			fmt.Fprintf(b, "[%s][%s]%s[%s];", s1, s2, concatFlags, concatOut)

			segments = append(segments, concatOut)
		}
	}

	return segments[len(segments)-1], nil
}
