package pipeline

import "testing"

func TestIsAudioOnlyExt(t *testing.T) {
	cases := map[string]bool{
		".mp3":  true,
		".MP3":  true,
		".flac": true,
		".mp4":  false,
		".mkv":  false,
		"":      false,
	}
	for ext, want := range cases {
		if got := isAudioOnlyExt(ext); got != want {
			t.Errorf("isAudioOnlyExt(%q) = %v, want %v", ext, got, want)
		}
	}
}
