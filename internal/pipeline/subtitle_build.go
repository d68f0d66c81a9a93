package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/clipcondense/internal/config"
	"github.com/backmassage/clipcondense/internal/ffmpeg"
	"github.com/backmassage/clipcondense/internal/probe"
	"github.com/backmassage/clipcondense/internal/subtitles"
	"github.com/backmassage/clipcondense/internal/timeranges"
)

// resolveSubtitlesPath returns a path to a natively-parseable subtitle
// file, demuxing subsPath into scratchDir first if it is not already one,
// grounded on
// original_source/subs2cia/cli_common_subtitle_extraction.py's
// optionally_extract_subtitles.
func resolveSubtitlesPath(ctx context.Context, sh *config.Shared, prober *probe.Prober, subsPath string, subsIndex *int, scratchDir string) (string, error) {
	if subtitles.IsSupportedFile(subsPath) {
		return subsPath, nil
	}

	res, err := prober.Probe(ctx, subsPath)
	if err != nil {
		return "", fmt.Errorf("probe subtitles input: %w", err)
	}
	stream, err := res.FirstMatching(subsIndex, "subtitle")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoSubtitleStream, err)
	}
	if stream == nil {
		return "", ErrNoSubtitleStream
	}

	extractPath := filepath.Join(scratchDir, "subtitles-extracted.ass")
	shOverwrite := *sh
	shOverwrite.Overwrite = true
	if r := ffmpeg.DemuxStream(ctx, &shOverwrite, subsPath, stream.ArrayIndex, extractPath); r.Err != nil {
		return "", fmt.Errorf("demux subtitle stream: %w (%s)", r.Err, strings.TrimSpace(r.Stderr))
	}
	return extractPath, nil
}

// applySubtitleMods filters subs.Events in place per §6's subtitle
// modification flags, grounded on
// original_source/subs2cia/cli_common_subtitle_mods.py's modify_subtitles.
func applySubtitleMods(subs *subtitles.Subtitles, mods config.SubtitleMods) {
	if !mods.KeepBlank {
		subs.FilterEvents(func(e subtitles.Event) bool {
			return strings.TrimSpace(e.PlainText) != ""
		})
	}
	for _, needle := range mods.RemoveContaining {
		n := needle
		subs.FilterEvents(func(e subtitles.Event) bool {
			return !strings.Contains(e.PlainText, n)
		})
	}
	if len(mods.KeepContaining) > 0 {
		subs.FilterEvents(func(e subtitles.Event) bool {
			for _, needle := range mods.KeepContaining {
				if strings.Contains(e.PlainText, needle) {
					return true
				}
			}
			return false
		})
	}
}

// buildTimeRanges derives a TimeRanges from a subtitle document's surviving
// events, at the document's own units-per-second, per §4.6 step (f).
func buildTimeRanges(subs *subtitles.Subtitles) (*timeranges.TimeRanges, error) {
	pairs := make([]timeranges.Range, len(subs.Events))
	for i, e := range subs.Events {
		pairs[i] = timeranges.Range{Start: e.Start, End: e.End}
	}
	return timeranges.FromUnsorted(pairs, subs.EventUnitsPerSecond)
}

// applyPadding rescales/pads tr per the resolved Padding option, always at
// 100 units-per-second per §6's padding semantics.
func applyPadding(tr *timeranges.TimeRanges, padding config.Padding) (*timeranges.TimeRanges, error) {
	return tr.Pad(padding.StartHundredths, padding.EndHundredths, subtitles.EventUnitsPerSecond)
}
