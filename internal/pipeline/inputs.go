package pipeline

import "github.com/backmassage/clipcondense/internal/config"

// ResolvedInputs is the video/audio/subs path+stream triple shared by both
// subcommands, grounded on
// original_source/subs2cia/cli_common_input_streams.py's InputStreams: a
// single --input-path stands in for any of the three paths that were not
// given their own explicit flag.
type ResolvedInputs struct {
	DefaultInputPath string

	VideoPath string
	AudioPath string
	SubsPath  string

	SubsEncoding string

	VideoStream *int
	AudioStream *int
	SubsStream  *int
}

// ResolveInputs fills in unset video/audio/subs paths from sh.InputPath.
func ResolveInputs(sh *config.Shared) ResolvedInputs {
	r := ResolvedInputs{
		DefaultInputPath: sh.InputPath,

		VideoPath: sh.InputVideoPath,
		AudioPath: sh.InputAudioPath,
		SubsPath:  sh.InputSubsPath,

		SubsEncoding: sh.InputSubsEncoding,

		VideoStream: sh.InputVideoStream,
		AudioStream: sh.InputAudioStream,
		SubsStream:  sh.InputSubsStream,
	}

	if r.VideoPath == "" {
		r.VideoPath = sh.InputPath
	}
	if r.AudioPath == "" {
		r.AudioPath = sh.InputPath
	}
	if r.SubsPath == "" {
		r.SubsPath = sh.InputPath
	}

	return r
}

// DiscardVideo clears the video slot, used when the condense output turns
// out to be audio-only (§4.6 condense flow, step b).
func (r *ResolvedInputs) DiscardVideo() {
	r.VideoPath = ""
	r.VideoStream = nil
}
