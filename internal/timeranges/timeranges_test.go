package timeranges

import "testing"

func mustFromUnsorted(t *testing.T, pairs []Range, ups int64) *TimeRanges {
	t.Helper()
	tr, err := FromUnsorted(pairs, ups)
	if err != nil {
		t.Fatalf("FromUnsorted: %v", err)
	}
	return tr
}

func TestFromUnsortedConsolidates(t *testing.T) {
	tr := mustFromUnsorted(t, []Range{{50, 100}, {0, 50}}, 1000)
	got := tr.Ranges()
	want := []Range{{0, 100}}
	if !equalRanges(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestConsolidateOrdering(t *testing.T) {
	tr := mustFromUnsorted(t, []Range{
		{80, 90}, {10, 20}, {40, 50},
	}, 100)
	want := []Range{{10, 20}, {40, 50}, {80, 90}}
	if !equalRanges(tr.Ranges(), want) {
		t.Fatalf("got %v, want %v", tr.Ranges(), want)
	}
}

func TestWithUnitsPerSecondCovers(t *testing.T) {
	tr := mustFromUnsorted(t, []Range{{1, 7}}, 3)
	rescaled, err := tr.WithUnitsPerSecond(10)
	if err != nil {
		t.Fatal(err)
	}
	// f = 10/3. floor(1*10/3)=3, ceil(7*10/3)=ceil(23.33)=24.
	want := []Range{{3, 24}}
	if !equalRanges(rescaled.Ranges(), want) {
		t.Fatalf("got %v, want %v", rescaled.Ranges(), want)
	}
}

func TestPadNoOp(t *testing.T) {
	tr := mustFromUnsorted(t, []Range{{10, 20}}, 100)
	padded, err := tr.Pad(0, 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !equalRanges(padded.Ranges(), tr.Ranges()) {
		t.Fatalf("pad(0,0) changed ranges: %v", padded.Ranges())
	}
}

func TestPadThenNoOpEqualsPad(t *testing.T) {
	tr := mustFromUnsorted(t, []Range{{10, 20}, {50, 60}}, 100)
	once, err := tr.Pad(5, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := once.Pad(0, 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !equalRanges(once.Ranges(), twice.Ranges()) {
		t.Fatalf("pad(0,0) after pad(x,y) changed ranges: %v vs %v", once.Ranges(), twice.Ranges())
	}
}

func TestPadClipsAtZero(t *testing.T) {
	tr := mustFromUnsorted(t, []Range{{2, 20}}, 100)
	padded, err := tr.Pad(10, 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	want := []Range{{0, 20}}
	if !equalRanges(padded.Ranges(), want) {
		t.Fatalf("got %v, want %v", padded.Ranges(), want)
	}
}

func TestIndexOf(t *testing.T) {
	tr := mustFromUnsorted(t, []Range{{10, 20}, {40, 50}, {80, 90}}, 100)
	cases := []struct {
		target int64
		want   int
	}{
		{0, 0},
		{10, 0},
		{15, 1},
		{40, 1},
		{100, 3},
	}
	for _, c := range cases {
		if got := tr.IndexOf(c.target); got != c.want {
			t.Errorf("IndexOf(%d) = %d, want %d", c.target, got, c.want)
		}
	}
}

func TestAddMergesAdjacent(t *testing.T) {
	tr := mustFromUnsorted(t, nil, 1000)
	if err := tr.Add(100, 500); err != nil {
		t.Fatal(err)
	}
	if err := tr.Add(500, 1000); err != nil {
		t.Fatal(err)
	}
	want := []Range{{100, 1000}}
	if !equalRanges(tr.Ranges(), want) {
		t.Fatalf("got %v, want %v", tr.Ranges(), want)
	}
}

func TestCumulativeSkip(t *testing.T) {
	tr := mustFromUnsorted(t, []Range{{10, 20}, {40, 50}, {80, 90}}, 100)
	skip := tr.CumulativeSkip()
	want := []int64{10, 30, 60}
	if len(skip) != len(want) {
		t.Fatalf("got %v, want %v", skip, want)
	}
	for i := range want {
		if skip[i] != want[i] {
			t.Fatalf("got %v, want %v", skip, want)
		}
	}
}

func equalRanges(a, b []Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
