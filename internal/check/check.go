// Package check provides pre-pipeline dependency validation for ffmpeg
// and ffprobe, adapted from the teacher's richer VAAPI/x265/AAC
// diagnostics down to the two external tools this domain actually
// shells out to.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by Deps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Error(string, ...interface{})
}

// Deps verifies that ffmpegCmd and ffprobeCmd resolve on PATH (or are
// themselves valid executable paths). It is run before any pipeline
// stage touches external tools, so a missing dependency is reported as
// a single clear error rather than a confusing mid-pipeline failure.
func Deps(ffmpegCmd, ffprobeCmd string) error {
	if _, err := exec.LookPath(ffmpegCmd); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath(ffprobeCmd); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// RunCheck runs the informational --check flow: prints ffmpeg/ffprobe
// availability and version strings. Unlike [Deps] this does not fail
// the process; it is purely diagnostic output for the user.
func RunCheck(ffmpegCmd, ffprobeCmd string, log Logger) {
	log.Info("=== System Check ===")
	checkTool(ffmpegCmd, "-version", log)
	checkTool(ffprobeCmd, "-version", log)
}

func checkTool(cmdName, versionFlag string, log Logger) {
	if _, err := exec.LookPath(cmdName); err != nil {
		log.Error("%s not found", cmdName)
		return
	}
	out, err := exec.Command(cmdName, versionFlag).Output()
	if err != nil {
		log.Error("%s found but %s failed: %v", cmdName, versionFlag, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", cmdName, firstLine)
}
