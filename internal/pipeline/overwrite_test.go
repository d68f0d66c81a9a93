package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckOverwriteAllowsNewPaths(t *testing.T) {
	dir := t.TempDir()
	if err := CheckOverwrite([]string{filepath.Join(dir, "out.mp3")}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckOverwriteRejectsExisting(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.mp3")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := CheckOverwrite([]string{p}, false)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*UsageError); !ok {
		t.Fatalf("expected *UsageError, got %T", err)
	}
}

func TestCheckOverwriteIgnoresDuplicatesAndEmpty(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.mp3")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := CheckOverwrite([]string{p, p, ""}, false)
	if err == nil {
		t.Fatal("expected an error naming the duplicated path once")
	}
	if !strings.HasPrefix(err.Error(), "output path already exists: "+p+"\n") {
		t.Fatalf("expected the single-path message naming %s once, got %q", p, err.Error())
	}
}

func TestCheckOverwriteWithAllowSkipsStat(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.mp3")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CheckOverwrite([]string{p}, true); err != nil {
		t.Fatalf("unexpected error with allowOverwrite: %v", err)
	}
}
