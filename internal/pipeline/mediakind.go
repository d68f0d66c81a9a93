package pipeline

import "strings"

// audioExtensions stands in for the "does this extension's MIME type start
// with audio/" check the original performs with Python's mimetypes module
// (original_source/subs2cia/cli.py), since Go's stdlib has no extension ->
// MIME registry covering every common media container.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".aac":  true,
	".flac": true,
	".wav":  true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".wma":  true,
	".aiff": true,
	".alac": true,
}

// isAudioOnlyExt reports whether ext (with leading dot, any case) names a
// container this system treats as audio-only, used to decide whether the
// condense flow should silently drop the video input (§4.6 step b).
func isAudioOnlyExt(ext string) bool {
	return audioExtensions[strings.ToLower(ext)]
}
