// Package ffmpeg wraps invocations of the external ffmpeg binary: stream
// demuxing, complex-filter application, and single-frame screenshot
// extraction. Grounded on original_source/subs2cia/ffmpeg_helpers.py.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/backmassage/clipcondense/internal/config"
	"github.com/backmassage/clipcondense/internal/pathutil"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string // captured stderr (always populated)
	Err    error  // non-nil when ffmpeg exits non-zero or fails to start
}

// Execute runs the named command with args, capturing stderr into a
// buffer and teeing it to os.Stderr when verbose mode is active.
func Execute(ctx context.Context, cmdName string, args []string, verbose bool) ExecResult {
	if cmdName == "" {
		return ExecResult{Err: fmt.Errorf("ffmpeg: empty command")}
	}

	cmd := exec.CommandContext(ctx, cmdName, args...)
	cmd.Stdin = nil

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

func safePath(path string) string {
	return pathutil.AvoidLeadingDash(path)
}

// DemuxStream extracts a single stream from inputPath into outputPath,
// the container format inferred by ffmpeg from outputPath's extension.
func DemuxStream(ctx context.Context, sh *config.Shared, inputPath string, streamIndex int, outputPath string) ExecResult {
	args := []string{
		overwriteFlag(sh.Overwrite),
		"-i", safePath(inputPath),
		"-map", fmt.Sprintf("0:%d", streamIndex),
		safePath(outputPath),
	}
	return Execute(ctx, sh.FfmpegCmd, args, sh.Verbose)
}

func overwriteFlag(overwrite bool) string {
	if overwrite {
		return "-y"
	}
	return "-n"
}

// ComplexFilterInputs names the intermediate filtergraph labels that feed
// the output map of an apply_complex_filter invocation. An empty string
// means that stream kind is not present in the output.
type ComplexFilterInputs struct {
	AudioLabel string
	VideoLabel string
	SubsStream string // a `-map`-able stream specifier, e.g. "0:2", not a filter label.
}

// ApplyComplexFilter runs ffmpeg over inputPaths with the given filter
// script, mapping the named intermediate labels (and, optionally, a
// subtitle stream copied straight through) to outputPath.
func ApplyComplexFilter(ctx context.Context, sh *config.Shared, inputPaths []string, filterScript string, outputs ComplexFilterInputs, outputPath string) ExecResult {
	if len(inputPaths) == 0 {
		return ExecResult{Err: fmt.Errorf("ffmpeg: no input files")}
	}
	if outputs.AudioLabel == "" && outputs.VideoLabel == "" {
		return ExecResult{Err: fmt.Errorf("ffmpeg: outputting no video and no audio")}
	}

	args := []string{overwriteFlag(sh.Overwrite), "-filter_complex", filterScript}

	for _, p := range inputPaths {
		args = append(args, "-i", safePath(p))
	}
	if outputs.AudioLabel != "" {
		args = append(args, "-map", "["+outputs.AudioLabel+"]")
	}
	if outputs.VideoLabel != "" {
		args = append(args, "-map", "["+outputs.VideoLabel+"]")
	}
	if outputs.SubsStream != "" {
		args = append(args, "-scodec", "copy", "-map", outputs.SubsStream)
	}
	args = append(args, safePath(outputPath))

	return Execute(ctx, sh.FfmpegCmd, args, sh.Verbose)
}

// ExtractScreenshot grabs a single frame from inputPath at timestampSeconds
// and writes it to outputPath, grounded on cli_srs.py's
// SrsExportJob.create_screenshot_job.
func ExtractScreenshot(ctx context.Context, sh *config.Shared, inputPath string, timestampSeconds float64, outputPath string) ExecResult {
	args := []string{
		overwriteFlag(sh.Overwrite),
		"-ss", fmt.Sprintf("%.3f", timestampSeconds),
		"-i", safePath(inputPath),
		"-frames:v", "1",
		safePath(outputPath),
	}
	return Execute(ctx, sh.FfmpegCmd, args, sh.Verbose)
}

// ExtractClip trims inputPath down to [startSeconds,endSeconds) and writes
// it to outputPath, the container format inferred by ffmpeg from
// outputPath's extension. It extends the single-frame
// SrsExportJob.create_screenshot_job pattern to the audioclip/videoclip SRS
// columns cli_srs.py left unimplemented.
func ExtractClip(ctx context.Context, sh *config.Shared, inputPath string, startSeconds, endSeconds float64, outputPath string) ExecResult {
	args := []string{
		overwriteFlag(sh.Overwrite),
		"-ss", fmt.Sprintf("%.3f", startSeconds),
		"-to", fmt.Sprintf("%.3f", endSeconds),
		"-i", safePath(inputPath),
		safePath(outputPath),
	}
	return Execute(ctx, sh.FfmpegCmd, args, sh.Verbose)
}
