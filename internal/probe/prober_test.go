package probe

import "testing"

func TestParseJSONComputesUnitsPerSecond(t *testing.T) {
	data := []byte(`{
		"streams": [
			{"index": 0, "codec_type": "video", "codec_name": "h264", "time_base": "1/24000"},
			{"index": 1, "codec_type": "audio", "codec_name": "aac", "time_base": "1/48000", "tags": {"language": "jpn"}},
			{"index": 2, "codec_type": "subtitle", "codec_name": "ass", "time_base": "1/100"}
		]
	}`)

	res, err := parseJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Streams) != 3 {
		t.Fatalf("got %d streams, want 3", len(res.Streams))
	}
	if res.Streams[1].UnitsPerSecond != 48000 {
		t.Errorf("got ups %d, want 48000", res.Streams[1].UnitsPerSecond)
	}
	if res.Streams[1].Language != "jpn" {
		t.Errorf("got language %q, want jpn", res.Streams[1].Language)
	}
}

func TestFirstMatchingByIndexStillAppliesCodecType(t *testing.T) {
	res := &Result{Streams: []StreamDescriptor{
		{ArrayIndex: 0, CodecType: "video"},
		{ArrayIndex: 1, CodecType: "audio"},
	}}
	idx := 0
	s, err := res.FirstMatching(&idx, "subtitle")
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Fatalf("index-based lookup should still apply the codecType filter, got %v", s)
	}

	s, err = res.FirstMatching(&idx, "video")
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || s.ArrayIndex != 0 {
		t.Fatalf("index-based lookup should return the indexed stream when codecType matches, got %v", s)
	}
}

func TestFirstMatchingByCodecType(t *testing.T) {
	res := &Result{Streams: []StreamDescriptor{
		{ArrayIndex: 0, CodecType: "video"},
		{ArrayIndex: 1, CodecType: "audio"},
		{ArrayIndex: 2, CodecType: "subtitle"},
	}}
	s, err := res.FirstMatching(nil, "subtitle")
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || s.ArrayIndex != 2 {
		t.Fatalf("got %+v, want subtitle at index 2", s)
	}
}

func TestFirstMatchingNoneFound(t *testing.T) {
	res := &Result{Streams: []StreamDescriptor{{ArrayIndex: 0, CodecType: "video"}}}
	s, err := res.FirstMatching(nil, "subtitle")
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Fatalf("expected nil, got %+v", s)
	}
}

func TestFirstMatchingIndexOutOfRange(t *testing.T) {
	res := &Result{Streams: []StreamDescriptor{{ArrayIndex: 0}}}
	idx := 5
	if _, err := res.FirstMatching(&idx, ""); err == nil {
		t.Fatal("expected out-of-range error")
	}
}
