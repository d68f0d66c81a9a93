package filtergraph

import (
	"strings"
	"testing"

	"github.com/backmassage/clipcondense/internal/timeranges"
)

func mustRanges(t *testing.T, pairs []timeranges.Range) *timeranges.TimeRanges {
	t.Helper()
	r, err := timeranges.FromUnsorted(pairs, 1000)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestWriteAudioTrimSingleRange(t *testing.T) {
	r := mustRanges(t, []timeranges.Range{{0, 100}})
	var b strings.Builder
	label, err := WriteAudioTrim(&b, r, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if label != "a0" {
		t.Fatalf("got label %q, want a0", label)
	}
	script := b.String()
	if !strings.Contains(script, "[0:1]atrim=start_pts=0:end_pts=100,asetpts=PTS-STARTPTS[a0];") {
		t.Fatalf("unexpected script: %s", script)
	}
	if strings.Contains(script, "concat") {
		t.Fatalf("single range should not produce a concat: %s", script)
	}
}

func TestWriteVideoTrimConcatenatesMultipleRanges(t *testing.T) {
	r := mustRanges(t, []timeranges.Range{{0, 100}, {200, 300}, {400, 500}})
	var b strings.Builder
	label, err := WriteVideoTrim(&b, r, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	script := b.String()
	if !strings.Contains(script, "[2:0]trim=start_pts=0:end_pts=100,setpts=PTS-STARTPTS[v0];") {
		t.Fatalf("missing first trim segment: %s", script)
	}
	if !strings.Contains(script, "[v0][v1]concat[cv0];") {
		t.Fatalf("missing first concat: %s", script)
	}
	if !strings.Contains(script, "[cv0][v2]concat[cv1];") {
		t.Fatalf("missing second concat: %s", script)
	}
	if label != "cv1" {
		t.Fatalf("got label %q, want cv1", label)
	}
}

func TestWriteTrimEmptyRangesErrors(t *testing.T) {
	r, err := timeranges.Empty(1000)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if _, err := WriteAudioTrim(&b, r, 0, 0); err == nil {
		t.Fatal("expected error for empty time ranges")
	}
}
