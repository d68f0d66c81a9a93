// Package pipeline wires together probing, subtitle parsing/retiming,
// filter-graph synthesis, and SRS export into the condense and srs
// subcommand flows. Grounded on original_source/subs2cia/cli.py and
// cli_srs.py.
package pipeline

import "errors"

// UsageError signals that the caller supplied invalid or contradictory
// options. It is always wrapped with enough detail to act on directly,
// so callers print its message without a stack trace, matching
// original_source/subs2cia/usage_error.py's UsageError contract.
type UsageError struct {
	msg string
}

func NewUsageError(msg string) *UsageError { return &UsageError{msg: msg} }

func (e *UsageError) Error() string { return e.msg }

// Sentinel errors for conditions that are not usage mistakes but still
// need a stable identity for callers to branch on (e.g. exit codes).
var (
	ErrNoMediaInput       = errors.New("pipeline: no video or audio input specified")
	ErrNoSubtitlesInput   = errors.New("pipeline: no subtitles input specified")
	ErrNoMediaStreamFound = errors.New("pipeline: no audio or video stream found")
	ErrNoSubtitleStream   = errors.New("pipeline: no subtitle stream or supported subtitles file found")
	ErrOutputsExist       = errors.New("pipeline: one or more output paths already exist")
)
