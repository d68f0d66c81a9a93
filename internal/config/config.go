// Package config holds runtime configuration: option structs, defaults,
// and validation shared by the condense and srs subcommands. Flag
// registration lives in [internal/cli]; this package only knows about
// resolved values.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// SubtitleMods holds the event-filtering options shared by both flows,
// adapted from the shared `cli_common_subtitle_mods` argument group.
type SubtitleMods struct {
	KeepBlank        bool     // --keep-blank-subs: keep events whose plain text is empty.
	RemoveContaining []string // --remove-subs-containing (repeatable).
	KeepContaining   []string // --keep-subs-containing (repeatable).
}

// Padding holds the resolved padding, in hundredths of a second (100 UPS),
// to apply to both sides of every derived time range.
type Padding struct {
	StartHundredths int64
	EndHundredths   int64
}

// Shared holds the input/output/overwrite/padding/tool options common to
// both `condense` and `srs`, mirroring the original's `cli_common_*`
// argument groups.
type Shared struct {
	InputPath         string // --input-path/-i: default source for unset video/audio/subs paths.
	InputVideoPath    string // --input-video-path/-iv
	InputAudioPath    string // --input-audio-path/-ia
	InputSubsPath     string // --input-subs-path/-is
	InputSubsEncoding string // --input-subs-encoding/-ise, default "utf-8".

	InputVideoStream *int // --input-video-stream/-ivs (array position, not declared index).
	InputAudioStream *int // --input-audio-stream/-ias
	InputSubsStream  *int // --input-subs-stream/-iss

	Overwrite bool // --overwrite/-w

	Padding Padding
	Mods    SubtitleMods

	ScratchPath string // --scratch-path; empty means "create and clean up a temp dir".
	FfmpegCmd   string // --ffmpeg-cmd, default "ffmpeg".
	FfprobeCmd  string // --ffprobe-cmd, default "ffprobe".

	ColorMode ColorMode
	Verbose   bool
	LogFile   string
}

// DefaultShared returns the option defaults common to both subcommands.
func DefaultShared() Shared {
	return Shared{
		InputSubsEncoding: "utf-8",
		FfmpegCmd:         "ffmpeg",
		FfprobeCmd:        "ffprobe",
		ColorMode:         ColorAuto,
	}
}

// CondenseOptions holds the full option set for the `condense` subcommand.
type CondenseOptions struct {
	Shared

	OutputPath     string // --output-path/-o
	OutputSubsPath string // --output-subs-path/-os
}

// DefaultCondenseOptions returns CondenseOptions with every default applied.
func DefaultCondenseOptions() CondenseOptions {
	return CondenseOptions{Shared: DefaultShared()}
}

// Validate checks CondenseOptions for internally-contradictory settings
// that flag parsing alone cannot catch (e.g. no output path derivable).
func (o *CondenseOptions) Validate() error {
	if o.InputPath == "" && o.InputVideoPath == "" && o.InputAudioPath == "" {
		if o.OutputPath == "" {
			return errors.New("missing --output-path (-o) or --input-path (-i)")
		}
	}
	return nil
}

// SrsOptions holds the full option set for the `srs` subcommand.
type SrsOptions struct {
	Shared

	OutputPath      string   // --output-path/-o
	Columns         []string // --columns/-c
	DisallowedChars string   // --disallowed-chars
	OutputDelimiter string   // --output-delimiter
	MediaDir        string   // --media/-m
}

// DefaultColumns is applied when --columns is not given.
var DefaultColumns = []string{"text", "screenclip", "audioclip", "videoclip"}

// DefaultDisallowedChars mirrors the original's Windows-hostile character set.
const DefaultDisallowedChars = `[]<>:"/?*^\|`

// DefaultSrsOptions returns SrsOptions with every default applied.
func DefaultSrsOptions() SrsOptions {
	return SrsOptions{
		Shared:          DefaultShared(),
		Columns:         append([]string(nil), DefaultColumns...),
		DisallowedChars: DefaultDisallowedChars,
	}
}

// AllowedColumns is the recognized set of --columns names.
var AllowedColumns = map[string]bool{
	"text":       true,
	"screenclip": true,
	"audioclip":  true,
	"videoclip":  true,
	"timestamp":  true,
}

// Validate checks SrsOptions for contradictory settings.
func (o *SrsOptions) Validate() error {
	for _, c := range o.Columns {
		if !AllowedColumns[c] {
			return fmt.Errorf("unrecognized column %q (use --help-columns to list valid names)", c)
		}
	}
	return nil
}

// namedDelimiters maps the named forms of --output-delimiter to a literal rune.
var namedDelimiters = map[string]rune{
	"tab":       '\t',
	"pipe":      '|',
	"semicolon": ';',
	"colon":     ':',
	"comma":     ',',
	"space":     ' ',
}

// ResolveDelimiter turns --output-delimiter plus the output path's extension
// into a concrete delimiter rune, per the named-set/extension-inference rules.
func ResolveDelimiter(named, outputPath string) (rune, error) {
	if named != "" {
		if r, ok := namedDelimiters[strings.ToLower(named)]; ok {
			return r, nil
		}
		runes := []rune(named)
		if len(runes) == 1 {
			return runes[0], nil
		}
		return 0, fmt.Errorf("invalid --output-delimiter %q (use a named delimiter or a single character)", named)
	}
	lower := strings.ToLower(outputPath)
	switch {
	case strings.HasSuffix(lower, ".tsv"):
		return '\t', nil
	default:
		return ',', nil
	}
}

// ApplyPaddingSeconds converts floating-point seconds into hundredths-of-a-
// second units, rounding to the nearest integer, matching the original's
// round(padding*100) behavior at 100 UPS.
func ApplyPaddingSeconds(seconds float64) int64 {
	if seconds < 0 {
		seconds = 0
	}
	return int64(seconds*100 + 0.5)
}

// ParseStreamIndex parses a user-supplied stream-index flag value. An empty
// string means "not specified".
func ParseStreamIndex(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid stream index %q", s)
	}
	return &n, nil
}
