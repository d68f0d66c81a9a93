package subtitles

import (
	"strings"
	"testing"

	"github.com/backmassage/clipcondense/internal/timeranges"
)

func TestParseUnparseTimeRoundTrip(t *testing.T) {
	cases := []string{"0:00:00.00", "1:23:45.67", "123:00:00.00", "0:00:05.09"}
	for _, c := range cases {
		n, err := ParseTime(c)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", c, err)
		}
		got, err := UnparseTime(n)
		if err != nil {
			t.Fatalf("UnparseTime: %v", err)
		}
		if got != c {
			t.Errorf("round trip %q -> %d -> %q", c, n, got)
		}
	}
}

func TestParseTimeRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"1:02", "1:02:03", "-1:02:03.00", "1:2:03.00a"} {
		if _, err := ParseTime(bad); err == nil {
			t.Errorf("ParseTime(%q): expected error", bad)
		}
	}
}

func TestEscapeToPlainText(t *testing.T) {
	cases := map[string]string{
		`hello\nworld`:  "hello\nworld",
		`hello\Nworld`:  "hello\nworld",
		`trailing\`:     `trailing\`,
		`a\qb`:          `a\qb`,
		`{\i1}italic{\i0}`: `{\i1}italic{\i0}`,
	}
	for in, want := range cases {
		if got := EscapeToPlainText(in); got != want {
			t.Errorf("EscapeToPlainText(%q) = %q, want %q", in, got, want)
		}
	}
}

const sampleASS = `[Script Info]
Title: test

[V4+ Styles]
Format: Name, Fontname
Style: Default,Arial

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,Hello, world
Dialogue: 0,0:00:05.00,0:00:06.00,Default,,0,0,0,,Second line
`

func TestParseExtractsEvents(t *testing.T) {
	subs, err := Parse(strings.NewReader(sampleASS))
	if err != nil {
		t.Fatal(err)
	}
	if len(subs.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(subs.Events))
	}
	if subs.Events[0].PlainText != "Hello, world" {
		t.Errorf("got text %q", subs.Events[0].PlainText)
	}
	if subs.Events[0].Start != 0 || subs.Events[0].End != 100 {
		t.Errorf("got (%d,%d), want (0,100)", subs.Events[0].Start, subs.Events[0].End)
	}
	if subs.EventUnitsPerSecond != 100 {
		t.Errorf("got ups %d, want 100", subs.EventUnitsPerSecond)
	}
}

func TestRetimePreservesUnknownLinesVerbatim(t *testing.T) {
	tr, err := timeranges.FromUnsorted([]timeranges.Range{{0, 100}, {500, 600}}, 100)
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := Retime(strings.NewReader(sampleASS), &out, tr); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "Title: test") {
		t.Errorf("unknown line not preserved: %q", got)
	}
	if !strings.Contains(got, "Dialogue: 0,0:00:00.00,0:00:01.00") {
		t.Errorf("surviving event not retimed as expected: %q", got)
	}
	if strings.Contains(got, "0:00:05.00") {
		t.Errorf("event kept by range (500,600) should have been shifted left past the 4s hole: %q", got)
	}
	if !strings.Contains(got, "Dialogue: 0,0:00:01.00,0:00:02.00") {
		t.Errorf("event kept by range (500,600) not retimed to 1s-2s: %q", got)
	}
}
