package pipeline

import (
	"testing"

	"github.com/backmassage/clipcondense/internal/timeranges"
)

func TestBuildInputFileListDedupesSameFile(t *testing.T) {
	files, audioIdx, videoIdx := buildInputFileList("combined.mkv", "combined.mkv")
	if len(files) != 1 {
		t.Fatalf("expected one deduplicated file, got %v", files)
	}
	if audioIdx != 0 || videoIdx != 0 {
		t.Fatalf("expected both indices to point at the single file, got audio=%d video=%d", audioIdx, videoIdx)
	}
}

func TestBuildInputFileListDistinctFiles(t *testing.T) {
	files, audioIdx, videoIdx := buildInputFileList("audio.flac", "video.mkv")
	if len(files) != 2 || files[0] != "audio.flac" || files[1] != "video.mkv" {
		t.Fatalf("unexpected file list: %v", files)
	}
	if audioIdx != 0 || videoIdx != 1 {
		t.Fatalf("expected audio=0 video=1, got audio=%d video=%d", audioIdx, videoIdx)
	}
}

func TestBuildInputFileListAudioOnly(t *testing.T) {
	files, audioIdx, videoIdx := buildInputFileList("audio.flac", "")
	if len(files) != 1 || audioIdx != 0 {
		t.Fatalf("unexpected result: files=%v audioIdx=%d", files, audioIdx)
	}
	if videoIdx != -1 {
		t.Fatalf("expected videoIdx -1 when no video path given, got %d", videoIdx)
	}
}

func TestRetainedHundredthsSumsRangeLengths(t *testing.T) {
	tr, err := timeranges.FromUnsorted([]timeranges.Range{{Start: 0, End: 100}, {Start: 200, End: 250}}, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got := retainedHundredths(tr); got != 150 {
		t.Fatalf("got %d, want 150", got)
	}
}
