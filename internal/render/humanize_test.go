package render

import (
	"testing"
	"time"

	"imgboard/internal/feed"
)

func TestCategoryName(t *testing.T) {
	if got := CategoryName(feed.CategoryAudio); got != "Audio" {
		t.Errorf("got %q", got)
	}
	if got := CategoryName(feed.Category("weird")); got != "weird" {
		t.Errorf("unknown code must pass through, got %q", got)
	}
}

func TestSortName(t *testing.T) {
	if got := SortName(feed.SortByDate, feed.Descending); got != "date ↓" {
		t.Errorf("got %q", got)
	}
	if got := SortName(feed.SortByUpvotes, feed.Ascending); got != "votes ↑" {
		t.Errorf("got %q", got)
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tc := range cases {
		if got := FormatSize(tc.in); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	got := FormatDate(ts)
	// Local zone varies; check the shape only.
	if len(got) != len("02.01.2006 15:04:05") {
		t.Errorf("unexpected format: %q", got)
	}
}
