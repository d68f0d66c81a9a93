package pipeline

import (
	"testing"

	"github.com/backmassage/clipcondense/internal/config"
)

func TestResolveInputsFallsBackToDefault(t *testing.T) {
	sh := config.DefaultShared()
	sh.InputPath = "movie.mkv"
	sh.InputSubsPath = "subs.ass"

	r := ResolveInputs(&sh)
	if r.VideoPath != "movie.mkv" || r.AudioPath != "movie.mkv" {
		t.Fatalf("expected video/audio to fall back to input path, got %+v", r)
	}
	if r.SubsPath != "subs.ass" {
		t.Fatalf("expected explicit subs path to win, got %q", r.SubsPath)
	}
}

func TestResolveInputsDiscardVideoClearsStream(t *testing.T) {
	idx := 2
	sh := config.DefaultShared()
	sh.InputVideoPath = "movie.mkv"
	sh.InputVideoStream = &idx

	r := ResolveInputs(&sh)
	r.DiscardVideo()

	if r.VideoPath != "" || r.VideoStream != nil {
		t.Fatalf("expected video path/stream cleared, got path=%q stream=%v", r.VideoPath, r.VideoStream)
	}
}
