package pipeline

import (
	"testing"

	"github.com/backmassage/clipcondense/internal/config"
)

func TestSwapDisallowedChars(t *testing.T) {
	got := swapDisallowedChars(`a/b:c"d`, config.DefaultDisallowedChars)
	want := "a_b_c_d"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSwapDisallowedCharsNoMatches(t *testing.T) {
	got := swapDisallowedChars("plain-name", config.DefaultDisallowedChars)
	if got != "plain-name" {
		t.Fatalf("got %q, want unchanged", got)
	}
}
