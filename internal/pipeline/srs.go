package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/clipcondense/internal/check"
	"github.com/backmassage/clipcondense/internal/config"
	"github.com/backmassage/clipcondense/internal/ffmpeg"
	"github.com/backmassage/clipcondense/internal/logging"
	"github.com/backmassage/clipcondense/internal/pathutil"
	"github.com/backmassage/clipcondense/internal/probe"
	"github.com/backmassage/clipcondense/internal/subtitles"
)

// exportJob is a single deferred unit of export work: a media file ffmpeg
// must produce before the SRS import is usable, grounded on cli_srs.py's
// SrsExportJob. Jobs are queued while rows are written and executed
// afterward, in order, each one skipped if its OutputPath already exists.
type exportJob struct {
	OutputPath string
	Run        func(ctx context.Context) error
}

// Srs runs the srs flow described in §4.6: resolve inputs the same way
// Condense does, then for every surviving subtitle event emit one export
// row plus whatever media-clip jobs its columns require, finally executing
// those jobs in event order.
func Srs(ctx context.Context, opts *config.SrsOptions, log *logging.Logger) (err error) {
	scope := NewScope()
	defer func() {
		if cerr := scope.Close(); cerr != nil {
			if err != nil {
				err = fmt.Errorf("%w (cleanup also failed: %v)", err, cerr)
			} else {
				err = fmt.Errorf("cleanup failed: %w", cerr)
			}
		}
	}()

	inputs := ResolveInputs(&opts.Shared)
	if inputs.SubsPath == "" {
		return ErrNoSubtitlesInput
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		if inputs.DefaultInputPath == "" {
			return NewUsageError("missing --output-path (-o) or --input-path (-i)")
		}
		outputPath = pathutil.SwapExt(inputs.DefaultInputPath, ".srs_export.tsv")
	}

	if err := CheckOverwrite([]string{outputPath}, opts.Overwrite); err != nil {
		return err
	}

	delimiter, err := config.ResolveDelimiter(opts.OutputDelimiter, outputPath)
	if err != nil {
		return NewUsageError(err.Error())
	}

	mediaDir := opts.MediaDir
	if mediaDir == "" {
		mediaDir = filepath.Dir(outputPath)
	}
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return fmt.Errorf("create media directory: %w", err)
	}

	if err := check.Deps(opts.FfmpegCmd, opts.FfprobeCmd); err != nil {
		return err
	}

	scratchDir, err := acquireScratchDir(scope, opts.ScratchPath)
	if err != nil {
		return err
	}

	prober := probe.NewProber(opts.FfprobeCmd)

	log.Stage("probing inputs")
	var videoProbe, audioProbe *probe.Result
	var videoStream, audioStream *probe.StreamDescriptor
	if inputs.VideoPath != "" {
		if videoProbe, err = prober.Probe(ctx, inputs.VideoPath); err != nil {
			return fmt.Errorf("probe video input: %w", err)
		}
		if videoStream, err = videoProbe.FirstMatching(inputs.VideoStream, "video"); err != nil {
			return fmt.Errorf("select video stream: %w", err)
		}
	}
	// The audio path is probed on its own, correcting
	// original_source/subs2cia/cli_srs.py's bug of reusing the video
	// probe to satisfy the audio-stream lookup (§9 Open Question (b)).
	if inputs.AudioPath != "" {
		if audioProbe, err = prober.Probe(ctx, inputs.AudioPath); err != nil {
			return fmt.Errorf("probe audio input: %w", err)
		}
		if audioStream, err = audioProbe.FirstMatching(inputs.AudioStream, "audio"); err != nil {
			return fmt.Errorf("select audio stream: %w", err)
		}
	}

	log.Stage("resolving subtitles")
	subsPath, err := resolveSubtitlesPath(ctx, &opts.Shared, prober, inputs.SubsPath, inputs.SubsStream, scratchDir)
	if err != nil {
		return err
	}

	subs, err := subtitles.ParseAtPath(subsPath, inputs.SubsEncoding)
	if err != nil {
		return fmt.Errorf("parse subtitles: %w", err)
	}
	applySubtitleMods(subs, opts.Mods)

	namePrefix := inputs.DefaultInputPath
	if namePrefix == "" {
		namePrefix = inputs.SubsPath
	}
	namePrefix = swapDisallowedChars(
		strings.TrimSuffix(filepath.Base(namePrefix), filepath.Ext(namePrefix)),
		opts.DisallowedChars,
	)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	w := csv.NewWriter(out)
	w.Comma = delimiter

	var jobs []exportJob

	for _, event := range subs.Events {
		stamp := fmt.Sprintf("%d-%d", event.Start, event.End)

		row := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			switch col {
			case "text":
				row[i] = event.PlainText

			case "timestamp":
				row[i] = stamp

			case "screenclip":
				if videoStream == nil || inputs.VideoPath == "" {
					continue
				}
				clipPath := filepath.Join(mediaDir, namePrefix+"_"+stamp+".jpg")
				row[i] = fmt.Sprintf(`<img src="%s" />`, html.EscapeString(filepath.Base(clipPath)))
				startSeconds := float64(event.Start) / float64(subs.EventUnitsPerSecond)
				jobs = append(jobs, exportJob{
					OutputPath: clipPath,
					Run: func(ctx context.Context) error {
						r := ffmpeg.ExtractScreenshot(ctx, &opts.Shared, inputs.VideoPath, startSeconds, clipPath)
						return r.Err
					},
				})

			case "audioclip":
				if audioStream == nil || inputs.AudioPath == "" {
					continue
				}
				clipPath := filepath.Join(mediaDir, namePrefix+"_"+stamp+".mp3")
				row[i] = fmt.Sprintf("[sound:%s]", filepath.Base(clipPath))
				startSeconds := float64(event.Start) / float64(subs.EventUnitsPerSecond)
				endSeconds := float64(event.End) / float64(subs.EventUnitsPerSecond)
				jobs = append(jobs, exportJob{
					OutputPath: clipPath,
					Run: func(ctx context.Context) error {
						r := ffmpeg.ExtractClip(ctx, &opts.Shared, inputs.AudioPath, startSeconds, endSeconds, clipPath)
						return r.Err
					},
				})

			case "videoclip":
				if videoStream == nil || inputs.VideoPath == "" {
					continue
				}
				clipPath := filepath.Join(mediaDir, namePrefix+"_"+stamp+".mp4")
				row[i] = fmt.Sprintf("[sound:%s]", filepath.Base(clipPath))
				startSeconds := float64(event.Start) / float64(subs.EventUnitsPerSecond)
				endSeconds := float64(event.End) / float64(subs.EventUnitsPerSecond)
				jobs = append(jobs, exportJob{
					OutputPath: clipPath,
					Run: func(ctx context.Context) error {
						r := ffmpeg.ExtractClip(ctx, &opts.Shared, inputs.VideoPath, startSeconds, endSeconds, clipPath)
						return r.Err
					},
				})
			}
		}

		if err := w.Write(row); err != nil {
			out.Close()
			return fmt.Errorf("write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		out.Close()
		return fmt.Errorf("flush export rows: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outputPath, err)
	}

	if len(jobs) == 0 {
		log.Success("SRS export written to %s (no media jobs)", outputPath)
		return nil
	}

	log.Stage("running %d export job(s)", len(jobs))
	bar := progressbar.Default(int64(len(jobs)), "exporting clips")
	for _, job := range jobs {
		if _, err := os.Stat(job.OutputPath); err == nil {
			log.Skip("%s already exists", filepath.Base(job.OutputPath))
			_ = bar.Add(1)
			continue
		}
		if err := job.Run(ctx); err != nil {
			return fmt.Errorf("export job %s: %w", filepath.Base(job.OutputPath), err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Close()

	log.Success("SRS export written to %s (%d media file(s))", outputPath, len(jobs))
	return nil
}

// swapDisallowedChars replaces every rune in disallowed with '_', grounded
// on cli_srs.py's swap_disallowed_chars.
func swapDisallowedChars(name, disallowed string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(disallowed, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
