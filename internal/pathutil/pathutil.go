// Package pathutil holds small path-manipulation helpers shared across
// the pipeline and ffmpeg packages, grounded on
// original_source/subs2cia/path_helpers.py.
package pathutil

import (
	"path/filepath"
	"strings"
)

// SwapExt replaces path's extension with newExt ("" removes it entirely).
func SwapExt(path, newExt string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + newExt
}

// Ext returns path's extension, including the leading dot.
func Ext(path string) string {
	return filepath.Ext(path)
}

// AvoidLeadingDash returns path unchanged unless it begins with '-', in
// which case it returns an absolute form so ffmpeg's argument parser
// does not mistake it for a flag.
func AvoidLeadingDash(path string) string {
	if strings.HasPrefix(path, "-") {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return path
}
