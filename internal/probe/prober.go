package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Prober runs ffprobe and memoizes results by path, so that resolving
// video/audio/subs streams that happen to live in the same container
// only invokes ffprobe once per path, mirroring FfprobeWrapper's
// implicit caching behavior referenced by cli_common.py.
type Prober struct {
	ffprobeCmd string

	mu    sync.Mutex
	cache map[string]*Result
}

// NewProber returns a Prober that shells out to ffprobeCmd.
func NewProber(ffprobeCmd string) *Prober {
	return &Prober{ffprobeCmd: ffprobeCmd, cache: make(map[string]*Result)}
}

// Probe returns the parsed stream list for path, probing at most once
// per distinct path for the lifetime of p.
func (p *Prober) Probe(ctx context.Context, path string) (*Result, error) {
	p.mu.Lock()
	if cached, ok := p.cache[path]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	cmd := exec.CommandContext(ctx, p.ffprobeCmd,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"--", path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("probe: ffprobe %q: %w", path, err)
	}

	res, err := parseJSON(out)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}

	p.mu.Lock()
	p.cache[path] = res
	p.mu.Unlock()
	return res, nil
}

type wireOutput struct {
	Streams []wireStream `json:"streams"`
}

type wireStream struct {
	Index       int               `json:"index"`
	CodecType   string            `json:"codec_type"`
	CodecName   string            `json:"codec_name"`
	TimeBase    string            `json:"time_base"`
	Disposition map[string]int    `json:"disposition"`
	Tags        map[string]string `json:"tags"`
}

func parseJSON(data []byte) (*Result, error) {
	var raw wireOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	res := &Result{Streams: make([]StreamDescriptor, 0, len(raw.Streams))}
	for i, s := range raw.Streams {
		ups, err := unitsPerSecond(s.TimeBase)
		if err != nil {
			return nil, fmt.Errorf("stream %d: %w", i, err)
		}
		res.Streams = append(res.Streams, StreamDescriptor{
			ArrayIndex:       i,
			CodecType:        s.CodecType,
			CodecName:        s.CodecName,
			UnitsPerSecond:   ups,
			IsAttachedPic:    s.Disposition["attached_pic"] == 1,
			IsBitmapSubCodec: bitmapSubCodecs[s.CodecName],
			Language:         s.Tags["language"],
		})
	}
	return res, nil
}

// unitsPerSecond inverts an ffprobe time_base string ("num/den", seconds
// per tick) into ticks per second via integer division, per
// FfprobeStream.get_units_per_second.
func unitsPerSecond(timeBase string) (int64, error) {
	parts := strings.Split(timeBase, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time_base %q", timeBase)
	}
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed time_base %q: %w", timeBase, err)
	}
	den, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed time_base %q: %w", timeBase, err)
	}
	if num == 0 {
		return 0, fmt.Errorf("malformed time_base %q: zero numerator", timeBase)
	}
	return den / num, nil
}
