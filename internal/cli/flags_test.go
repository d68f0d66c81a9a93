package cli

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/backmassage/clipcondense/internal/config"
)

func TestResolvePaddingFlagsDefaultsToZero(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p := &paddingFlags{}
	definePaddingFlags(fs, p)

	padding, err := resolvePaddingFlags(fs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if padding.StartHundredths != 0 || padding.EndHundredths != 0 {
		t.Fatalf("expected zero padding, got %+v", padding)
	}
}

func TestResolvePaddingFlagsAllAppliesBothSides(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p := &paddingFlags{}
	definePaddingFlags(fs, p)

	if err := fs.Parse([]string{"--padding", "1.5"}); err != nil {
		t.Fatal(err)
	}
	padding, err := resolvePaddingFlags(fs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if padding.StartHundredths != 150 || padding.EndHundredths != 150 {
		t.Fatalf("expected {150 150}, got %+v", padding)
	}
}

func TestResolvePaddingFlagsAllConflictsWithStart(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p := &paddingFlags{}
	definePaddingFlags(fs, p)

	if err := fs.Parse([]string{"--padding", "1", "--padding-start", "2"}); err != nil {
		t.Fatal(err)
	}
	if _, err := resolvePaddingFlags(fs, p); err == nil {
		t.Fatal("expected a usage error for --padding combined with --padding-start")
	}
}

func TestResolvePaddingFlagsSeparateStartEnd(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p := &paddingFlags{}
	definePaddingFlags(fs, p)

	if err := fs.Parse([]string{"--padding-start", "0.5", "--pe", "0.25"}); err != nil {
		t.Fatal(err)
	}
	padding, err := resolvePaddingFlags(fs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if padding.StartHundredths != 50 || padding.EndHundredths != 25 {
		t.Fatalf("got %+v, want {50 25}", padding)
	}
}

func TestResolveInputStreamFlagsPrefersAlias(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	sh := config.DefaultShared()
	defineInputStreamFlags(fs, &sh)

	if err := fs.Parse([]string{"--input-video-stream", "1", "--ivs", "3"}); err != nil {
		t.Fatal(err)
	}
	resolveInputStreamFlags(fs, &sh)
	if sh.InputVideoStream == nil || *sh.InputVideoStream != 3 {
		t.Fatalf("expected InputVideoStream=3, got %v", sh.InputVideoStream)
	}
}

func TestResolveInputStreamFlagsUnsetStaysNil(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	sh := config.DefaultShared()
	defineInputStreamFlags(fs, &sh)

	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	resolveInputStreamFlags(fs, &sh)
	if sh.InputVideoStream != nil {
		t.Fatalf("expected nil, got %v", sh.InputVideoStream)
	}
}

func TestParseColorMode(t *testing.T) {
	if _, err := parseColorMode("bogus"); err == nil {
		t.Fatal("expected an error for an unrecognized color mode")
	}
	mode, err := parseColorMode("always")
	if err != nil || mode != config.ColorAlways {
		t.Fatalf("got (%v, %v), want (always, nil)", mode, err)
	}
}
