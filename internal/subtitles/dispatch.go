package subtitles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/clipcondense/internal/timeranges"
)

// SupportedExtensions lists the file extensions (lowercase, with leading
// dot) this package can parse and rewrite natively, per
// original_source/subs2cia/subtitles.py's get_supported_formats.
var SupportedExtensions = map[string]bool{
	".ass": true,
}

// IsSupportedFile reports whether path's extension names a natively
// supported subtitle container.
func IsSupportedFile(path string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ParseAtPath opens path and parses it as a natively supported subtitle
// container. The encoding argument is accepted for interface parity with
// the shared CLI options but is otherwise unused: Go's text handling is
// UTF-8 native and the pipeline only ever feeds this function files it
// has already produced or that the user declared as UTF-8.
func ParseAtPath(path string, encoding string) (*Subtitles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("subtitles: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// RetimeFile streams inPath to outPath through [Retime].
func RetimeFile(inPath, outPath string, r *timeranges.TimeRanges) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("subtitles: open %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("subtitles: create %s: %w", outPath, err)
	}
	defer out.Close()

	return Retime(in, out, r)
}
